// Package types holds the data model shared by the chain store, comms
// client and sync driver: hashes, headers, blocks and peer-advertised
// chain metadata.
package types

import (
	"encoding/hex"
	"fmt"
)

// HashLength is the width, in bytes, of a BlockHash.
const HashLength = 32

// BlockHash identifies a block or header by content. Equality is
// byte-wise; BlockHash is comparable and safe to use as a map key.
type BlockHash [HashLength]byte

// NilHash is the zero-valued hash, used as a sentinel for "no block".
var NilHash = BlockHash{}

// IsNil reports whether h is the zero hash.
func (h BlockHash) IsNil() bool {
	return h == NilHash
}

func (h BlockHash) String() string {
	return hex.EncodeToString(h[:])
}

// Short renders the first and last few bytes, for log lines.
func (h BlockHash) Short() string {
	s := h.String()
	if len(s) <= 12 {
		return s
	}
	return fmt.Sprintf("%s..%s", s[:6], s[len(s)-6:])
}

// BlockHashFromBytes copies b into a BlockHash, erroring if the length
// does not match HashLength.
func BlockHashFromBytes(b []byte) (BlockHash, error) {
	var h BlockHash
	if len(b) != HashLength {
		return h, fmt.Errorf("block hash must be %d bytes, got %d", HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}
