// Package store implements the chain store adapter: a non-blocking
// façade, backed by a bounded worker pool, over a synchronous Backend.
// The default Backend is backed by github.com/dgraph-io/badger/v2.
package store

import (
	"github.com/ironveil-chain/ironsync/chain/types"
)

// Backend is the synchronous storage contract the Adapter dispatches
// onto its worker pool. A concrete Backend never blocks on anything
// but disk I/O.
type Backend interface {
	GetMetadata() (types.ChainMetadata, error)
	FetchHeaderWithBlockHash(hash types.BlockHash) (types.BlockHeader, error)
	FetchOrphan(hash types.BlockHash) (types.Block, error)
	AddBlock(block types.Block) error
	Close() error
}
