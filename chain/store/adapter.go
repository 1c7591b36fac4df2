package store

import (
	"context"
	"fmt"

	"github.com/ironveil-chain/ironsync/chain/types"
)

// job is a unit of work dispatched onto the adapter's worker pool: a
// thunk over the synchronous Backend, plus a channel to deliver its
// result back to the caller that's blocked on NextEvent's goroutine.
type job func(Backend)

// Adapter implements sync.StoreAdapter over a bounded pool of
// goroutines, each owning no state of its own: every job closure reads
// or writes the Backend and reports back on its own result channel.
// This keeps at most `workers` backend calls in flight at once,
// bounding the number of concurrent badger transactions regardless of
// how many sync attempts are racing (there is normally exactly one).
type Adapter struct {
	backend Backend
	jobs    chan job
	done    chan struct{}
}

// NewAdapter starts workers goroutines pulling from a shared job queue
// and returns an Adapter ready to use as a sync.StoreAdapter. Call
// Close to stop the pool and release the underlying Backend.
func NewAdapter(backend Backend, workers int) *Adapter {
	if workers < 1 {
		workers = 1
	}
	a := &Adapter{
		backend: backend,
		jobs:    make(chan job),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go a.worker()
	}
	return a
}

func (a *Adapter) worker() {
	for {
		select {
		case j, ok := <-a.jobs:
			if !ok {
				return
			}
			j(a.backend)
		case <-a.done:
			return
		}
	}
}

// Close stops the worker pool and closes the underlying Backend.
func (a *Adapter) Close() error {
	close(a.done)
	return a.backend.Close()
}

func (a *Adapter) dispatch(ctx context.Context, j job) error {
	select {
	case a.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-a.done:
		return fmt.Errorf("store adapter closed")
	}
}

func (a *Adapter) GetMetadata(ctx context.Context) (types.ChainMetadata, error) {
	type result struct {
		meta types.ChainMetadata
		err  error
	}
	resCh := make(chan result, 1)
	if err := a.dispatch(ctx, func(b Backend) {
		meta, err := b.GetMetadata()
		resCh <- result{meta, err}
	}); err != nil {
		return types.ChainMetadata{}, err
	}
	select {
	case res := <-resCh:
		return res.meta, res.err
	case <-ctx.Done():
		return types.ChainMetadata{}, ctx.Err()
	}
}

func (a *Adapter) FetchHeaderWithBlockHash(ctx context.Context, hash types.BlockHash) (types.BlockHeader, error) {
	type result struct {
		header types.BlockHeader
		err    error
	}
	resCh := make(chan result, 1)
	if err := a.dispatch(ctx, func(b Backend) {
		header, err := b.FetchHeaderWithBlockHash(hash)
		resCh <- result{header, err}
	}); err != nil {
		return types.BlockHeader{}, err
	}
	select {
	case res := <-resCh:
		return res.header, res.err
	case <-ctx.Done():
		return types.BlockHeader{}, ctx.Err()
	}
}

func (a *Adapter) FetchOrphan(ctx context.Context, hash types.BlockHash) (types.Block, error) {
	type result struct {
		block types.Block
		err   error
	}
	resCh := make(chan result, 1)
	if err := a.dispatch(ctx, func(b Backend) {
		block, err := b.FetchOrphan(hash)
		resCh <- result{block, err}
	}); err != nil {
		return types.Block{}, err
	}
	select {
	case res := <-resCh:
		return res.block, res.err
	case <-ctx.Done():
		return types.Block{}, ctx.Err()
	}
}

func (a *Adapter) AddBlock(ctx context.Context, block types.Block) error {
	resCh := make(chan error, 1)
	if err := a.dispatch(ctx, func(b Backend) {
		resCh <- b.AddBlock(block)
	}); err != nil {
		return err
	}
	select {
	case err := <-resCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
