package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// BlockHeader carries the fields the sync core needs to walk and link
// chains. Fields beyond PrevHash are opaque to the sync core (spec
// treats validation-relevant fields as belonging to another
// collaborator), but are kept here so Hash() is deterministic and so a
// concrete store/codec has somewhere to put them.
type BlockHeader struct {
	Version   uint8
	Height    uint64
	PrevHash  BlockHash
	Timestamp int64
	Nonce     uint64
	// MerkleRoot commits to the block body (AggregateBody); the sync
	// core never inspects it, only hashes it.
	MerkleRoot BlockHash
}

// Hash deterministically hashes the header's canonical fields. It must
// be pure: two headers with identical fields hash identically
// regardless of construction order.
func (h BlockHeader) Hash() BlockHash {
	buf := make([]byte, 0, 1+8+HashLength+8+8+HashLength)
	buf = append(buf, h.Version)
	buf = binary.BigEndian.AppendUint64(buf, h.Height)
	buf = append(buf, h.PrevHash[:]...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(h.Timestamp))
	buf = binary.BigEndian.AppendUint64(buf, h.Nonce)
	buf = append(buf, h.MerkleRoot[:]...)
	return sha256.Sum256(buf)
}
