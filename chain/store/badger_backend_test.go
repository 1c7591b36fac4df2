package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironveil-chain/ironsync/chain/sync"
	"github.com/ironveil-chain/ironsync/chain/types"
)

func openTestBackend(t *testing.T) *BadgerBackend {
	t.Helper()
	backend, err := OpenBadgerBackend(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestBadgerBackend_GetMetadataEmptyIsZeroValue(t *testing.T) {
	backend := openTestBackend(t)

	meta, err := backend.GetMetadata()
	require.NoError(t, err)
	assert.False(t, meta.HasBestBlock())
	assert.Equal(t, int64(0), meta.Difficulty().Int64())
}

func TestBadgerBackend_AddBlockExtendsTipAndPersistsHeader(t *testing.T) {
	backend := openTestBackend(t)

	genesis := types.Block{Header: types.BlockHeader{Height: 0}}
	require.NoError(t, backend.AddBlock(genesis))

	next := types.Block{Header: types.BlockHeader{Height: 1, PrevHash: genesis.Hash()}}
	require.NoError(t, backend.AddBlock(next))

	meta, err := backend.GetMetadata()
	require.NoError(t, err)
	assert.Equal(t, next.Hash(), meta.BestBlock)
	require.NotNil(t, meta.Height)
	assert.Equal(t, uint64(1), *meta.Height)

	header, err := backend.FetchHeaderWithBlockHash(genesis.Hash())
	require.NoError(t, err)
	assert.Equal(t, genesis.Header, header)
}

func TestBadgerBackend_AddBlockRejectsNonExtendingBlock(t *testing.T) {
	backend := openTestBackend(t)

	genesis := types.Block{Header: types.BlockHeader{Height: 0}}
	require.NoError(t, backend.AddBlock(genesis))

	disconnected := types.Block{Header: types.BlockHeader{Height: 5, Nonce: 99}}
	err := backend.AddBlock(disconnected)
	require.Error(t, err)
	assert.ErrorIs(t, err, sync.ErrInvalidBlock)
}

func TestBadgerBackend_FetchHeaderUnknownHashErrors(t *testing.T) {
	backend := openTestBackend(t)

	var unknown types.BlockHash
	unknown[0] = 0x42
	_, err := backend.FetchHeaderWithBlockHash(unknown)
	require.Error(t, err)
}

func TestBadgerBackend_CacheOrphanThenFetch(t *testing.T) {
	backend := openTestBackend(t)

	orphan := types.Block{Header: types.BlockHeader{Height: 7, Nonce: 7}}
	require.NoError(t, backend.CacheOrphan(orphan))

	got, err := backend.FetchOrphan(orphan.Hash())
	require.NoError(t, err)
	assert.Equal(t, orphan, got)

	_, err = backend.FetchOrphan(types.BlockHash{})
	assert.Error(t, err)
}

func TestBadgerBackend_AddBlockClearsMatchingOrphan(t *testing.T) {
	backend := openTestBackend(t)

	genesis := types.Block{Header: types.BlockHeader{Height: 0}}
	require.NoError(t, backend.AddBlock(genesis))

	next := types.Block{Header: types.BlockHeader{Height: 1, PrevHash: genesis.Hash()}}
	require.NoError(t, backend.CacheOrphan(next))
	require.NoError(t, backend.AddBlock(next))

	_, err := backend.FetchOrphan(next.Hash())
	assert.Error(t, err)
}
