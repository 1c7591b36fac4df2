// Package comms implements the peer communication client: a
// best-effort oracle over a fixed set of network peers, identified by
// libp2p peer.IDs the same way the rest of the surrounding node
// identifies them.
package comms

import (
	"context"

	"github.com/ironveil-chain/ironsync/chain/types"
)

// PeerSource enumerates peers currently believed reachable. A real
// deployment backs this with the node's libp2p host peerstore; tests
// back it with a fixed slice.
type PeerSource interface {
	ConnectedPeers() []Peer
}

// PeerTransport is the request/response surface one connected peer
// exposes. Methods return an error for any transport failure; Client
// never distinguishes "peer didn't answer" from "peer answered wrong",
// both are simply retried against a (possibly different) peer.
type PeerTransport interface {
	RequestMetadata(ctx context.Context, p Peer) (types.ChainMetadata, error)
	RequestHeaders(ctx context.Context, p Peer, hashes []types.BlockHash) ([]types.BlockHeader, error)
	RequestBlocks(ctx context.Context, p Peer, hashes []types.BlockHash) ([]types.HistoricalBlock, error)
}
