// Package sync implements the BlockSync node state: a backward header
// walk that discovers the chain segment missing between the local tip
// and the best network tip, followed by a forward block-apply pass
// that persists the discovered segment.
package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironveil-chain/ironsync/chain/types"
	"github.com/ironveil-chain/ironsync/internal/metrics"
	"github.com/ironveil-chain/ironsync/internal/xlog"
)

var logger = xlog.Logger("sync")

// BlockSyncInfo is the BlockSync node state. It carries no data of its
// own between invocations: every next_event call rebuilds its working
// state (the download queue, retry counters) from scratch, so
// cancellation at any point is safe to resume from.
type BlockSyncInfo struct{}

// FromListening constructs a BlockSyncInfo transitioning in from the
// Listening state, which happens when a node has been temporarily
// disconnected from the network, or a reorg has occurred.
func FromListening() BlockSyncInfo { return BlockSyncInfo{} }

// FromInitialSync constructs a BlockSyncInfo transitioning in from the
// InitialSync state, which happens when a previously-synced node is
// restarted after being offline for some time.
func FromInitialSync() BlockSyncInfo { return BlockSyncInfo{} }

// Driver bundles the collaborators NextEvent needs: the store adapter,
// the peer comms client, and the retry configuration that bounds both
// phases.
type Driver struct {
	Store  StoreAdapter
	Comms  CommsClient
	Config Config
}

// NewDriver builds a Driver with the default retry configuration.
func NewDriver(store StoreAdapter, comms CommsClient) *Driver {
	return &Driver{Store: store, Comms: comms, Config: DefaultConfig()}
}

// queueEntry is one hash in the download queue. Orphan is non-nil when
// the hash was discovered via the local orphan pool during the
// backward walk; the forward-apply phase then applies it directly
// instead of fetching it from a peer (see DESIGN.md on the orphan
// open question).
type queueEntry struct {
	hash   types.BlockHash
	orphan *types.Block
}

// NextEvent is BlockSync's single entry point. It must not panic on
// any peer-induced input: every header or block a peer returns is
// checked against the hash that was requested before it is trusted.
func (d *Driver) NextEvent(ctx context.Context, _ BlockSyncInfo) StateEvent {
	logger.Info("synchronizing missing blocks")

	event := d.synchronizeBlocks(ctx)

	switch event.Kind {
	case BlocksSynchronized:
		logger.Info("block sync state has synchronised")
		metrics.IsSynced.Set(1)
	case MaxRequestAttemptsReached:
		logger.Warn("maximum unsuccessful header/block request attempts reached")
		metrics.IsSynced.Set(0)
	case ForkNotLinked:
		metrics.IsSynced.Set(1)
	case FatalError:
		metrics.IsSynced.Set(0)
	}
	return event
}

func (d *Driver) synchronizeBlocks(ctx context.Context) StateEvent {
	localMetadata, err := d.Store.GetMetadata(ctx)
	if err != nil {
		return fatal(ErrKindStoreRead, fmt.Sprintf("reading local chain metadata: %s", err))
	}

	networkMetadata, err := d.networkTipMetadata(ctx)
	if err != nil {
		return fatal(ErrKindPeerMetadata, fmt.Sprintf("reading network tip metadata: %s", err))
	}

	if !networkMetadata.HasBestBlock() {
		return synchronized()
	}

	if localMetadata.Difficulty().Cmp(networkMetadata.Difficulty()) >= 0 {
		// Already at or above the network's declared difficulty: the
		// backward walk never needs to run at all. This is the common
		// case and is distinct from ForkNotLinked below, which only
		// fires once a walk has actually failed to converge.
		return synchronized()
	}

	queue, linked, escalation := d.walkBackward(ctx, localMetadata, networkMetadata)
	if escalation != nil {
		return *escalation
	}

	if !linked {
		logger.Warn("network fork chain not linked to local chain")
		return forkNotLinked()
	}

	return d.applyForward(ctx, queue)
}

func (d *Driver) networkTipMetadata(ctx context.Context) (types.ChainMetadata, error) {
	peerMetadata, err := d.Comms.GetMetadata(ctx)
	if err != nil {
		return types.ChainMetadata{}, err
	}
	return SelectNetworkTip(peerMetadata), nil
}

// walkBackward is Phase 1: walking from the network tip toward the
// local chain. It returns the download queue in parent-before-child
// order, whether the walk ever reached a hash already on the local
// chain, and a non-nil StateEvent only when the header retry ceiling
// was hit (the only escalation this phase can produce).
func (d *Driver) walkBackward(
	ctx context.Context,
	local, network types.ChainMetadata,
) (queue []queueEntry, linked bool, escalation *StateEvent) {
	syncHash := network.BestBlock
	attempts := 0

	for local.Difficulty().Cmp(network.Difficulty()) < 0 {
		if _, err := d.Store.FetchHeaderWithBlockHash(ctx, syncHash); err == nil {
			linked = true
			break
		}

		if orphan, err := d.Store.FetchOrphan(ctx, syncHash); err == nil {
			entry := queueEntry{hash: syncHash, orphan: &orphan}
			queue = append([]queueEntry{entry}, queue...)
			syncHash = orphan.Header.PrevHash
			continue
		}

		if len(queue) == 0 || queue[0].hash != syncHash {
			queue = append([]queueEntry{{hash: syncHash}}, queue...)
		}

		headers, err := d.Comms.FetchHeadersWithHashes(ctx, []types.BlockHash{syncHash})
		if err != nil {
			logger.Warnf("failed to fetch header from peer: %s. retrying", err)
		} else {
			logger.Debugf("received %d headers from peer", len(headers))
			if len(headers) > 0 && headers[0].Hash() == syncHash {
				attempts = 0
				syncHash = headers[0].PrevHash
				continue
			}
		}

		attempts++
		metrics.HeaderRetries.Inc()
		if attempts >= d.Config.MaxHeaderRequestRetryAttempts {
			event := maxAttemptsReached()
			return nil, false, &event
		}
	}

	metrics.QueueLength.Set(float64(len(queue)))
	return queue, linked, nil
}

// applyForward is Phase 2, run only when walkBackward linked to the
// local chain.
func (d *Driver) applyForward(ctx context.Context, queue []queueEntry) StateEvent {
	for _, entry := range queue {
		if entry.orphan != nil {
			if err := d.applyOrphan(ctx, entry); err != nil {
				return *err
			}
			continue
		}

		if err := d.applyFromPeer(ctx, entry.hash); err != nil {
			return *err
		}
	}
	return synchronized()
}

func (d *Driver) applyOrphan(ctx context.Context, entry queueEntry) *StateEvent {
	err := d.Store.AddBlock(ctx, *entry.orphan)
	if err == nil {
		metrics.BlocksApplied.Inc()
		return nil
	}
	// An orphan that was accepted into the pool but now fails to apply
	// (whether InvalidBlock, ValidationError, or a storage fault)
	// cannot be resolved by retrying the same in-memory bytes a peer
	// never sent us; treat it as fatal rather than loop forever.
	event := fatal(ErrKindStoreWrite, fmt.Sprintf("applying previously-orphaned block %s: %s", entry.hash.Short(), err))
	return &event
}

func (d *Driver) applyFromPeer(ctx context.Context, hash types.BlockHash) *StateEvent {
	attempts := 0
	for attempts < d.Config.MaxBlockRequestRetryAttempts {
		blocks, err := d.Comms.FetchBlocksWithHashes(ctx, []types.BlockHash{hash})
		if err != nil {
			logger.Warnf("failed to fetch blocks from peer: %s. retrying", err)
			attempts++
			metrics.BlockRetries.Inc()
			continue
		}

		logger.Debugf("received %d blocks from peer", len(blocks))
		if len(blocks) == 0 || blocks[0].Block().Hash() != hash {
			attempts++
			metrics.BlockRetries.Inc()
			continue
		}

		block := blocks[0].Block()
		err = d.Store.AddBlock(ctx, block)
		switch {
		case err == nil:
			metrics.BlocksApplied.Inc()
			return nil
		case errors.Is(err, ErrInvalidBlock):
			logger.Warnf("invalid block %s received from peer. retrying", hash.Short())
			attempts++
			metrics.BlockRetries.Inc()
		case errors.Is(err, ErrValidationFailed):
			logger.Warnf("validation on block %s from peer failed. retrying", hash.Short())
			attempts++
			metrics.BlockRetries.Inc()
		default:
			event := fatal(ErrKindStoreWrite, fmt.Sprintf("adding block %s: %s", hash.Short(), err))
			return &event
		}
	}

	event := maxAttemptsReached()
	return &event
}
