package transfer_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/transfer"
)

func TestBalanceQueryGetCaches(t *testing.T) {
	reader := &fakeReader{balance: big.NewInt(10)}
	recorder := &fakeRecorder{}
	q := transfer.NewBalanceQuery(reader, recorder, 0)
	owner := common.HexToAddress("0x01")

	assert.True(t, q.Peek(owner).IsLoading)

	for range 3 {
		balance, err := q.Get(t.Context(), owner)
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance.Int64())
	}
	assert.Equal(t, 1, reader.Calls())
	assert.Len(t, recorder.reads, 1)

	view := q.Peek(owner)
	assert.False(t, view.IsLoading)
	assert.Equal(t, int64(10), view.Value.Int64())

	assert.True(t, q.Peek(common.HexToAddress("0x02")).IsLoading)
}

func TestBalanceQueryRefetchKeepsLastValueOnError(t *testing.T) {
	reader := &fakeReader{balance: big.NewInt(10)}
	q := transfer.NewBalanceQuery(reader, nil, 0)
	owner := common.HexToAddress("0x01")

	_, err := q.Refetch(t.Context(), owner)
	require.NoError(t, err)

	reader.mu.Lock()
	reader.err = errors.New("boom")
	reader.mu.Unlock()

	_, err = q.Refetch(t.Context(), owner)
	require.Error(t, err)

	view := q.Peek(owner)
	require.Error(t, view.Err)
	assert.Equal(t, int64(10), view.Value.Int64())

	reader.mu.Lock()
	reader.err = nil
	reader.balance = big.NewInt(11)
	reader.mu.Unlock()

	balance, err := q.Get(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(11), balance.Int64())
}

func TestBalanceQueryOwnerChangeDropsValue(t *testing.T) {
	reader := &fakeReader{balance: big.NewInt(10)}
	q := transfer.NewBalanceQuery(reader, nil, 0)

	_, err := q.Refetch(t.Context(), common.HexToAddress("0x01"))
	require.NoError(t, err)

	reader.err = errors.New("boom")
	_, err = q.Refetch(t.Context(), common.HexToAddress("0x02"))
	require.Error(t, err)

	view := q.Peek(common.HexToAddress("0x02"))
	assert.Nil(t, view.Value)
	require.Error(t, view.Err)
}

func TestBalanceQueryDeduplicatesConcurrentGets(t *testing.T) {
	reader := &fakeReader{balance: big.NewInt(3), block: make(chan struct{})}
	q := transfer.NewBalanceQuery(reader, nil, 0)
	owner := common.HexToAddress("0x01")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			balance, err := q.Get(t.Context(), owner)
			assert.NoError(t, err)
			assert.Equal(t, int64(3), balance.Int64())
		}()
	}

	close(reader.block)
	wg.Wait()

	assert.LessOrEqual(t, reader.Calls(), 8)
	assert.GreaterOrEqual(t, reader.Calls(), 1)
}

func TestBalanceQueryRefetchDoesNotJoinInFlightRead(t *testing.T) {
	reader := newStagedReader(1000, 950)
	recorder := &fakeRecorder{}
	q := transfer.NewBalanceQuery(reader, recorder, 0)
	owner := common.HexToAddress("0x01")

	q.Prefetch(owner)
	<-reader.entered

	balance, err := q.Refetch(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(950), balance.Int64())
	assert.Equal(t, 2, reader.Calls())

	close(reader.release)
	require.Eventually(t, func() bool { return recorder.Reads() == 2 }, time.Second, 5*time.Millisecond)

	// the older read finished last but must not replace the newer value
	view := q.Peek(owner)
	require.NoError(t, view.Err)
	assert.Equal(t, int64(950), view.Value.Int64())
}

func TestBalanceQueryCancelledCallerDoesNotFailJoinedCaller(t *testing.T) {
	reader := &fakeReader{balance: big.NewInt(7), block: make(chan struct{}), entered: make(chan struct{}, 1)}
	q := transfer.NewBalanceQuery(reader, nil, 0)
	owner := common.HexToAddress("0x01")

	ctx, cancel := context.WithCancel(t.Context())
	firstErr := make(chan error, 1)
	go func() {
		_, err := q.Get(ctx, owner)
		firstErr <- err
	}()
	<-reader.entered

	type result struct {
		balance *big.Int
		err     error
	}
	joined := make(chan result, 1)
	go func() {
		balance, err := q.Get(t.Context(), owner)
		joined <- result{balance, err}
	}()

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(reader.block)
	res := <-joined
	require.NoError(t, res.err)
	assert.Equal(t, int64(7), res.balance.Int64())

	view := q.Peek(owner)
	require.NoError(t, view.Err)
	assert.Equal(t, int64(7), view.Value.Int64())
}

func TestBalanceQueryReadTimeout(t *testing.T) {
	q := transfer.NewBalanceQuery(hangingReader{}, nil, 20*time.Millisecond)

	_, err := q.Refetch(t.Context(), common.HexToAddress("0x01"))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	view := q.Peek(common.HexToAddress("0x01"))
	require.ErrorIs(t, view.Err, context.DeadlineExceeded)
}

type hangingReader struct{}

func (hangingReader) BalanceOf(ctx context.Context, _ common.Address) (*big.Int, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
