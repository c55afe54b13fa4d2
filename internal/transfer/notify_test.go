package transfer_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/transfer"
)

func TestToastBoxAutoClose(t *testing.T) {
	clock := time2.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	box := transfer.NewToastBox(clock, 5*time.Second)

	box.Success(t.Context(), "Transferred 1 tokens to 0x1")
	clock.Advance(3 * time.Second)
	box.Failure(t.Context(), "Failed to transfer tokens")

	active := box.Active()
	require.Len(t, active, 2)
	assert.Equal(t, transfer.ToastSuccess, active[0].Kind)
	assert.Equal(t, transfer.ToastError, active[1].Kind)
	assert.NotEqual(t, active[0].ID, active[1].ID)

	clock.Advance(2 * time.Second)
	active = box.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Failed to transfer tokens", active[0].Message)

	clock.Advance(3 * time.Second)
	assert.Empty(t, box.Active())
}

func TestToastBoxDismiss(t *testing.T) {
	clock := time2.NewMockClock(time.Now())
	box := transfer.NewToastBox(clock, time.Minute)

	box.Success(t.Context(), "a")
	box.Success(t.Context(), "b")

	active := box.Active()
	require.Len(t, active, 2)

	assert.True(t, box.Dismiss(active[0].ID))
	assert.False(t, box.Dismiss(active[0].ID))

	active = box.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].Message)
}

func TestToastBoxKeepsNewest(t *testing.T) {
	clock := time2.NewMockClock(time.Now())
	box := transfer.NewToastBox(clock, time.Minute)

	for i := range 15 {
		box.Success(t.Context(), fmt.Sprintf("toast %d", i))
	}

	active := box.Active()
	require.Len(t, active, 10)
	assert.Equal(t, "toast 5", active[0].Message)
	assert.Equal(t, "toast 14", active[9].Message)
}

func TestNotifiersFanOut(t *testing.T) {
	a, b := &fakeNotifier{}, &fakeNotifier{}
	n := transfer.Notifiers{a, b, transfer.LogNotifier{}}

	n.Success(t.Context(), "ok")
	n.Failure(t.Context(), "nope")

	for _, f := range []*fakeNotifier{a, b} {
		sent := f.Sent()
		require.Len(t, sent, 2)
		assert.Equal(t, notification{success: true, msg: "ok"}, sent[0])
		assert.Equal(t, notification{success: false, msg: "nope"}, sent[1])
	}
}
