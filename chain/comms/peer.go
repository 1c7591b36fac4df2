package comms

import (
	libp2ppeer "github.com/libp2p/go-libp2p/core/peer"
)

// Peer identifies one connected network peer by its libp2p peer.ID.
type Peer struct {
	ID libp2ppeer.ID
}

func (p Peer) String() string {
	return p.ID.String()
}
