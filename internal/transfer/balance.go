package transfer

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const defaultReadTimeout = 15 * time.Second

// BalanceView is the state of the balance read for one owner.
// Value keeps the last successful read while a refetch fails.
type BalanceView struct {
	Value     *big.Int
	IsLoading bool
	Err       error
}

// BalanceQuery caches the balanceOf read of the connected account. Concurrent
// cached reads of the same owner share a single call; Refetch always issues a new one.
type BalanceQuery struct {
	reader   BalanceReader
	recorder Recorder
	timeout  time.Duration
	group    singleflight.Group

	mu     sync.RWMutex
	seq    uint64
	stored uint64
	owner  common.Address
	value  *big.Int
	err    error
	loaded bool
}

// NewBalanceQuery returns a query reading through reader. Every read is bounded by
// timeout, defaultReadTimeout if zero.
func NewBalanceQuery(reader BalanceReader, recorder Recorder, timeout time.Duration) *BalanceQuery {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}
	return &BalanceQuery{reader: reader, recorder: recorder, timeout: timeout}
}

// Refetch re-issues the read for owner and stores the result. A read already in
// flight is not joined, as it may predate a write the caller wants to observe.
func (q *BalanceQuery) Refetch(ctx context.Context, owner common.Address) (*big.Int, error) {
	q.group.Forget(owner.Hex())
	return q.read(ctx, owner)
}

// Get returns the cached balance of owner, reading it if there is none.
func (q *BalanceQuery) Get(ctx context.Context, owner common.Address) (*big.Int, error) {
	q.mu.RLock()
	if q.loaded && q.owner == owner && q.err == nil {
		value := q.value
		q.mu.RUnlock()
		return value, nil
	}
	q.mu.RUnlock()

	return q.read(ctx, owner)
}

// Peek returns the cached state without reading.
func (q *BalanceQuery) Peek(owner common.Address) BalanceView {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.loaded || q.owner != owner {
		return BalanceView{IsLoading: true}
	}

	return BalanceView{Value: q.value, Err: q.err}
}

// Prefetch starts a background read when nothing is cached for owner yet.
func (q *BalanceQuery) Prefetch(owner common.Address) {
	if !q.Peek(owner).IsLoading {
		return
	}

	go func() {
		if _, err := q.read(context.Background(), owner); err != nil {
			log.Warn().Err(err).Str("owner", owner.Hex()).Msg("Failed to prefetch balance")
		}
	}()
}

// read joins or starts the shared read of owner. The shared call outlives the
// cancellation of any single caller; each caller stops waiting on its own ctx.
func (q *BalanceQuery) read(ctx context.Context, owner common.Address) (*big.Int, error) {
	ch := q.group.DoChan(owner.Hex(), func() (interface{}, error) {
		seq := q.nextSeq()

		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), q.timeout)
		defer cancel()

		balance, err := q.reader.BalanceOf(readCtx, owner)
		q.store(seq, owner, balance, err)
		q.recorder.ObserveBalanceRead(err)
		return balance, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*big.Int), nil //nolint:forcetypeassert
	}
}

func (q *BalanceQuery) nextSeq() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	return q.seq
}

// store keeps the result of read seq unless a later read has already been stored.
func (q *BalanceQuery) store(seq uint64, owner common.Address, value *big.Int, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if seq < q.stored {
		return
	}
	q.stored = seq

	if q.owner != owner {
		q.owner = owner
		q.value = nil
	}

	q.loaded = true
	q.err = err
	if err == nil {
		q.value = value
	}
}
