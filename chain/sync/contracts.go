package sync

import (
	"context"

	"github.com/ironveil-chain/ironsync/chain/types"
)

// StoreAdapter is the chain store contract: a non-blocking façade over
// an otherwise synchronous backend. "Not found" is an error, not a nil
// result, because the driver treats presence and absence of a hash
// distinctly.
type StoreAdapter interface {
	// GetMetadata reads the local tip; failure is always fatal to the
	// invocation.
	GetMetadata(ctx context.Context) (types.ChainMetadata, error)

	// FetchHeaderWithBlockHash returns the header if hash is on the
	// canonical local chain, an error otherwise.
	FetchHeaderWithBlockHash(ctx context.Context, hash types.BlockHash) (types.BlockHeader, error)

	// FetchOrphan returns the cached orphan block with that hash, an
	// error if none is cached.
	FetchOrphan(ctx context.Context, hash types.BlockHash) (types.Block, error)

	// AddBlock attempts to extend the chain. A nil error means
	// accepted; errors.Is(err, ErrInvalidBlock) or
	// errors.Is(err, ErrValidationFailed) mean "retry the same hash";
	// any other error is fatal.
	AddBlock(ctx context.Context, block types.Block) error
}

// CommsClient is the peer communication contract: an opaque
// request/response oracle. Peer selection is internal to the client;
// the driver never learns which peer answered and must not trust any
// result without checking the returned hash against the hash it asked
// for.
type CommsClient interface {
	// GetMetadata returns one ChainMetadata per responding peer, in
	// unspecified order.
	GetMetadata(ctx context.Context) ([]types.ChainMetadata, error)

	// FetchHeadersWithHashes is best-effort: it may return fewer
	// headers than requested, in any order, or fail outright.
	FetchHeadersWithHashes(ctx context.Context, hashes []types.BlockHash) ([]types.BlockHeader, error)

	// FetchBlocksWithHashes has the same best-effort semantics as
	// FetchHeadersWithHashes.
	FetchBlocksWithHashes(ctx context.Context, hashes []types.BlockHash) ([]types.HistoricalBlock, error)
}
