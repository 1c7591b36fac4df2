package comms

import (
	"github.com/libp2p/go-libp2p/core/host"
)

// HostPeerSource reads connected peers directly off a libp2p host's
// network, so the comms Client always sees the swarm's current view
// rather than a snapshot taken at construction time.
type HostPeerSource struct {
	Host host.Host
}

func (s *HostPeerSource) ConnectedPeers() []Peer {
	ids := s.Host.Network().Peers()
	peers := make([]Peer, 0, len(ids))
	for _, id := range ids {
		peers = append(peers, Peer{ID: id})
	}
	return peers
}
