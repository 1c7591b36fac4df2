package types

import "math/big"

// ChainMetadata is a peer's (or our own) advertised tip: the best block
// known, its accumulated proof-of-work difficulty, and its height.
// BestBlock is the nil hash when a peer has nothing to advertise.
type ChainMetadata struct {
	BestBlock            BlockHash
	AccumulatedDifficulty *big.Int
	Height                *uint64
}

// NewChainMetadata returns a ChainMetadata with difficulty defaulted to
// zero rather than nil, so callers never hit a nil-pointer comparison.
func NewChainMetadata() ChainMetadata {
	return ChainMetadata{AccumulatedDifficulty: new(big.Int)}
}

// Difficulty returns AccumulatedDifficulty, treating a nil pointer as
// zero so callers never need a nil check before comparing.
func (m ChainMetadata) Difficulty() *big.Int {
	if m.AccumulatedDifficulty == nil {
		return new(big.Int)
	}
	return m.AccumulatedDifficulty
}

// HasBestBlock reports whether the peer advertised a tip at all.
func (m ChainMetadata) HasBestBlock() bool {
	return !m.BestBlock.IsNil()
}
