package sync

import "github.com/ironveil-chain/ironsync/chain/types"

// SelectNetworkTip reduces peer-advertised metadata to a single best
// tip: the entry with the greatest accumulated difficulty wins. The
// comparison uses >=, so among equal-difficulty peers the
// later-encountered entry wins; this is incidental to the reduction
// order, not a correctness property callers may depend on. An empty
// list yields the zero metadata (no best block, difficulty zero),
// which the driver reads as "nothing to sync".
func SelectNetworkTip(peers []types.ChainMetadata) types.ChainMetadata {
	best := types.NewChainMetadata()
	for _, current := range peers {
		if current.Difficulty().Cmp(best.Difficulty()) >= 0 {
			best = current
		}
	}
	return best
}
