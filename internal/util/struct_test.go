package util_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/util"
)

type components struct {
	Name    string
	Cache   map[string]string
	Handler func()
	hidden  *int
}

func TestIsStructInitialized(t *testing.T) {
	require.NoError(t, util.IsStructInitialized(&components{Cache: map[string]string{}, Handler: func() {}}))

	err := util.IsStructInitialized(components{Cache: map[string]string{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Handler")

	require.Error(t, util.IsStructInitialized((*components)(nil)))
	require.Error(t, util.IsStructInitialized(42))
}

func TestRequestIDFromContext(t *testing.T) {
	_, err := util.RequestIDFromContext(context.Background())
	require.ErrorIs(t, err, util.ErrContextValueNotFound)

	ctx := context.WithValue(context.Background(), util.CTXKeyRequestID, "abc")
	id, err := util.RequestIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestDisableLogger(t *testing.T) {
	ctx := util.DisableLogger(context.Background(), true)
	assert.True(t, util.ShouldDisableLogger(ctx))
	assert.False(t, util.ShouldDisableLogger(context.Background()))
}
