package comms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jpillora/backoff"

	"github.com/ironveil-chain/ironsync/chain/types"
	"github.com/ironveil-chain/ironsync/internal/xlog"
)

var logger = xlog.Logger("comms")

// Client implements sync.CommsClient over a PeerSource and a
// PeerTransport. It never blocks the caller longer than it has to: a
// single peer failure is retried against the next connected peer with
// an exponential backoff between attempts, bounded by maxPeerAttempts,
// rather than surfaced immediately.
type Client struct {
	source    PeerSource
	transport PeerTransport

	mu   sync.Mutex
	next int // round-robin cursor over ConnectedPeers()

	maxPeerAttempts int
	backoffMin      time.Duration
	backoffMax      time.Duration
}

// NewClient builds a Client with sensible retry defaults: up to 3
// peers tried per request, backing off between 50ms and 2s.
func NewClient(source PeerSource, transport PeerTransport) *Client {
	return &Client{
		source:          source,
		transport:       transport,
		maxPeerAttempts: 3,
		backoffMin:      50 * time.Millisecond,
		backoffMax:      2 * time.Second,
	}
}

func (c *Client) newBackoff() *backoff.Backoff {
	return &backoff.Backoff{Min: c.backoffMin, Max: c.backoffMax, Factor: 2, Jitter: true}
}

// peerRotation returns up to n peers starting from the round-robin
// cursor, so repeated failures don't keep hammering the same peer.
func (c *Client) peerRotation(n int) []Peer {
	peers := c.source.ConnectedPeers()
	if len(peers) == 0 {
		return nil
	}
	if n > len(peers) {
		n = len(peers)
	}
	c.mu.Lock()
	start := c.next
	c.next = (c.next + 1) % len(peers)
	c.mu.Unlock()

	rotated := make([]Peer, 0, n)
	for i := 0; i < n; i++ {
		rotated = append(rotated, peers[(start+i)%len(peers)])
	}
	return rotated
}

// GetMetadata fans a metadata request out to every connected peer and
// collects whatever answers arrive; an unresponsive or erroring peer
// is simply absent from the result, never surfaced as an error.
func (c *Client) GetMetadata(ctx context.Context) ([]types.ChainMetadata, error) {
	peers := c.source.ConnectedPeers()
	if len(peers) == 0 {
		return nil, nil
	}

	type result struct {
		meta types.ChainMetadata
		err  error
	}
	results := make(chan result, len(peers))
	for _, p := range peers {
		go func(p Peer) {
			meta, err := c.transport.RequestMetadata(ctx, p)
			results <- result{meta, err}
		}(p)
	}

	metas := make([]types.ChainMetadata, 0, len(peers))
	for i := 0; i < len(peers); i++ {
		res := <-results
		if res.err != nil {
			logger.Debugf("metadata request failed: %s", res.err)
			continue
		}
		metas = append(metas, res.meta)
	}
	return metas, nil
}

// FetchHeadersWithHashes tries connected peers in rotation, sleeping
// for an exponential backoff after each failed attempt, and returns the
// first successful response. The caller is responsible for checking the returned
// headers actually match what was asked for.
func (c *Client) FetchHeadersWithHashes(ctx context.Context, hashes []types.BlockHash) ([]types.BlockHeader, error) {
	b := c.newBackoff()
	var lastErr error
	for _, p := range c.peerRotation(c.maxPeerAttempts) {
		headers, err := c.transport.RequestHeaders(ctx, p, hashes)
		if err == nil {
			return headers, nil
		}
		lastErr = err
		logger.Debugf("header request to peer %s failed: %s. backing off", p, err)
		select {
		case <-time.After(b.Duration()):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr == nil {
		return nil, fmt.Errorf("no connected peers")
	}
	return nil, lastErr
}

// FetchBlocksWithHashes has the same peer-rotation-with-backoff
// semantics as FetchHeadersWithHashes.
func (c *Client) FetchBlocksWithHashes(ctx context.Context, hashes []types.BlockHash) ([]types.HistoricalBlock, error) {
	b := c.newBackoff()
	var lastErr error
	for _, p := range c.peerRotation(c.maxPeerAttempts) {
		blocks, err := c.transport.RequestBlocks(ctx, p, hashes)
		if err == nil {
			return blocks, nil
		}
		lastErr = err
		logger.Debugf("block request to peer %s failed: %s. backing off", p, err)
		select {
		case <-time.After(b.Duration()):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr == nil {
		return nil, fmt.Errorf("no connected peers")
	}
	return nil, lastErr
}
