package comms

import (
	"context"
	"encoding/gob"
	"fmt"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/protocol"

	"github.com/ironveil-chain/ironsync/chain/types"
)

// SyncProtocol is the libp2p stream protocol ID block-sync RPCs are
// served on.
const SyncProtocol = protocol.ID("/ironsync/sync/1.0.0")

type requestKind uint8

const (
	requestMetadata requestKind = iota
	requestHeaders
	requestBlocks
)

type streamRequest struct {
	Kind   requestKind
	Hashes []types.BlockHash
}

type streamResponse struct {
	Metadata types.ChainMetadata
	Headers  []types.BlockHeader
	Blocks   []types.HistoricalBlock
	Err      string
}

// LibP2PTransport implements PeerTransport by opening a fresh stream
// to the target peer on SyncProtocol for every request. Streams are
// not pooled: block-sync RPCs are infrequent enough relative to
// libp2p's own connection reuse that the extra handshake cost isn't
// worth a pool's bookkeeping.
type LibP2PTransport struct {
	host host.Host
}

// NewLibP2PTransport wraps an already-constructed libp2p host.
func NewLibP2PTransport(h host.Host) *LibP2PTransport {
	return &LibP2PTransport{host: h}
}

func (t *LibP2PTransport) roundTrip(ctx context.Context, p Peer, req streamRequest) (streamResponse, error) {
	stream, err := t.host.NewStream(ctx, p.ID, SyncProtocol)
	if err != nil {
		return streamResponse{}, fmt.Errorf("opening stream to %s: %w", p, err)
	}
	defer stream.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetDeadline(deadline)
	}

	if err := gob.NewEncoder(stream).Encode(req); err != nil {
		return streamResponse{}, fmt.Errorf("encoding request to %s: %w", p, err)
	}
	if err := stream.CloseWrite(); err != nil {
		return streamResponse{}, fmt.Errorf("closing write side to %s: %w", p, err)
	}

	var resp streamResponse
	if err := gob.NewDecoder(stream).Decode(&resp); err != nil {
		return streamResponse{}, fmt.Errorf("decoding response from %s: %w", p, err)
	}
	if resp.Err != "" {
		return streamResponse{}, fmt.Errorf("peer %s: %s", p, resp.Err)
	}
	return resp, nil
}

func (t *LibP2PTransport) RequestMetadata(ctx context.Context, p Peer) (types.ChainMetadata, error) {
	resp, err := t.roundTrip(ctx, p, streamRequest{Kind: requestMetadata})
	if err != nil {
		return types.ChainMetadata{}, err
	}
	return resp.Metadata, nil
}

func (t *LibP2PTransport) RequestHeaders(ctx context.Context, p Peer, hashes []types.BlockHash) ([]types.BlockHeader, error) {
	resp, err := t.roundTrip(ctx, p, streamRequest{Kind: requestHeaders, Hashes: hashes})
	if err != nil {
		return nil, err
	}
	return resp.Headers, nil
}

func (t *LibP2PTransport) RequestBlocks(ctx context.Context, p Peer, hashes []types.BlockHash) ([]types.HistoricalBlock, error) {
	resp, err := t.roundTrip(ctx, p, streamRequest{Kind: requestBlocks, Hashes: hashes})
	if err != nil {
		return nil, err
	}
	return resp.Blocks, nil
}

// ServeStream is the server-side handler registered for SyncProtocol;
// a node running cmd/ironsyncd sets this as its stream handler so
// peers can query it the same way it queries them.
func ServeStream(store interface {
	GetMetadata(ctx context.Context) (types.ChainMetadata, error)
	FetchHeaderWithBlockHash(ctx context.Context, hash types.BlockHash) (types.BlockHeader, error)
}) network.StreamHandler {
	return func(stream network.Stream) {
		defer stream.Close()

		var req streamRequest
		if err := gob.NewDecoder(stream).Decode(&req); err != nil {
			return
		}

		ctx := context.Background()
		var resp streamResponse
		switch req.Kind {
		case requestMetadata:
			meta, err := store.GetMetadata(ctx)
			if err != nil {
				resp.Err = err.Error()
			} else {
				resp.Metadata = meta
			}
		case requestHeaders:
			headers := make([]types.BlockHeader, 0, len(req.Hashes))
			for _, h := range req.Hashes {
				header, err := store.FetchHeaderWithBlockHash(ctx, h)
				if err == nil {
					headers = append(headers, header)
				}
			}
			resp.Headers = headers
		case requestBlocks:
			resp.Err = "block bodies are not served from header-only storage"
		}

		_ = gob.NewEncoder(stream).Encode(resp)
	}
}
