package sync

import "errors"

// ErrKind enumerates the error dispositions a store or comms
// collaborator can report, as a small enumerated kind rather than
// string-typed errors.
type ErrKind string

const (
	ErrKindStoreRead    ErrKind = "store_read"
	ErrKindStoreWrite   ErrKind = "store_write"
	ErrKindPeerMetadata ErrKind = "peer_metadata"
	ErrKindPeerHeader   ErrKind = "peer_header"
	ErrKindPeerBlock    ErrKind = "peer_block"
	ErrKindRejected     ErrKind = "block_rejected"
	ErrKindFatal        ErrKind = "fatal"
)

// ErrInvalidBlock and ErrValidationFailed are the two recoverable
// add_block dispositions; a store adapter wraps them with
// fmt.Errorf("%w: %s", ErrInvalidBlock, details) so callers can test
// with errors.Is while still carrying a human-readable detail string.
// Any other error returned by AddBlock is fatal.
var (
	ErrInvalidBlock     = errors.New("invalid block")
	ErrValidationFailed = errors.New("block validation failed")
)
