package types

// Block is a header paired with its body.
type Block struct {
	Header BlockHeader
	Body   AggregateBody
}

// Hash delegates to the header; a block's identity is its header hash.
func (b Block) Hash() BlockHash {
	return b.Header.Hash()
}

// HistoricalBlock is the wire form a peer returns for a block fetch:
// a Block plus whatever provenance the comms layer wants to keep
// around (kept minimal here since the sync core only reads Block()).
type HistoricalBlock struct {
	block Block
}

// NewHistoricalBlock wraps a decoded Block as the comms client's
// response type.
func NewHistoricalBlock(b Block) HistoricalBlock {
	return HistoricalBlock{block: b}
}

// Block returns the wrapped block.
func (h HistoricalBlock) Block() Block {
	return h.block
}
