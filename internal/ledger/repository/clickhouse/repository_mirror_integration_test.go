package clickhouse

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/registry"
)

func (s *RepositorySuite) TestInsertChainsAndCheckpoints() {
	mainnet, err := registry.ChainFromParams(&chaincfg.MainNetParams)
	s.Require().NoError(err)
	checkpoints := registry.CheckpointsFromParams(mainnet.Name, &chaincfg.MainNetParams)
	s.Require().NotEmpty(checkpoints)

	s.metrics.EXPECT().Observe("insert_chains", mainnet.Name, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_checkpoints", mainnet.Name, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertChains(s.ctx, []model.Chain{mainnet}))
	s.Require().NoError(s.repo.InsertCheckpoints(s.ctx, checkpoints))
	// Re-inserting keeps one row per height.
	s.Require().NoError(s.repo.InsertCheckpoints(s.ctx, checkpoints))

	s.Equal(uint64(1), s.countRows("ledger_chains"))
	s.Equal(uint64(len(checkpoints)), s.countRows("ledger_checkpoints"))
}

func (s *RepositorySuite) TestInsertBlockRows() {
	block := testBlock()
	txs := []*model.Transaction{block.Transactions()[0].Tx}

	s.metrics.EXPECT().Observe("insert_blocks", testChain, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_block_transactions", testChain, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transactions", testChain, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_inputs", testChain, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_outputs", testChain, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.ctx, testChain, []*model.Block{block}))
	s.Require().NoError(s.repo.InsertBlockTransactions(s.ctx, testChain, []*model.Block{block}))
	s.Require().NoError(s.repo.InsertTransactions(s.ctx, testChain, txs))
	s.Require().NoError(s.repo.InsertInputs(s.ctx, testChain, txs))
	s.Require().NoError(s.repo.InsertOutputs(s.ctx, testChain, txs))

	s.Equal(uint64(1), s.countRows("ledger_blocks"))
	s.Equal(uint64(1), s.countRows("ledger_block_transactions"))
	s.Equal(uint64(1), s.countRows("ledger_transactions"))
	s.Equal(uint64(1), s.countRows("ledger_inputs"))
	s.Equal(uint64(1), s.countRows("ledger_outputs"))
}

func (s *RepositorySuite) TestMaxConnectedHeight() {
	s.metrics.EXPECT().Observe("max_connected_height", testChain, gomock.Any(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("insert_connected_blocks", testChain, gomock.Nil(), gomock.Any()).Times(1)

	_, err := s.repo.MaxConnectedHeight(s.ctx, testChain)
	s.Require().ErrorIs(err, model.ErrNotFound)

	genesis := testBlock()
	infos := []model.ConnectedBlockInfo{
		{Hash: genesis.Hash(), Height: 0, Work: big.NewInt(1)},
		{Hash: [32]byte{2}, Parent: genesis.Hash(), Height: 1, Work: new(big.Int).Lsh(big.NewInt(1), 200)},
	}
	s.Require().NoError(s.repo.InsertConnectedBlocks(s.ctx, testChain, infos))

	height, err := s.repo.MaxConnectedHeight(s.ctx, testChain)
	s.Require().NoError(err)
	s.Equal(uint32(1), height)

	s.metrics.EXPECT().Observe("mirrored_blocks", testChain, gomock.Nil(), gomock.Any()).Times(2)
	hashes, err := s.repo.MirroredBlocks(s.ctx, testChain, 1, 5)
	s.Require().NoError(err)
	s.Len(hashes, 1)
	s.Contains(hashes, chainhash.Hash{2})

	hashes, err = s.repo.MirroredBlocks(s.ctx, testChain, 0, 1)
	s.Require().NoError(err)
	s.Len(hashes, 2)
}

func (s *RepositorySuite) TestInsertPatriciaNodes() {
	trie := patricia.New(patricia.Config{Tag: 1, KeyBits: 16})
	session := patricia.NewSession(nil, patricia.NewAllocator(patricia.NoNode))
	root := patricia.NoNode
	for _, key := range [][]byte{{0x00, 0x01}, {0x80, 0x00}, {0x80, 0x01}} {
		var err error
		root, err = trie.Insert(session, root, patricia.BitsFromBytes(key), key)
		s.Require().NoError(err)
	}
	nodes := session.Reachable(root)

	s.metrics.EXPECT().Observe("insert_patricia_nodes", testChain, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertPatriciaNodes(s.ctx, testChain, nodes))
	s.Equal(uint64(len(nodes)), s.countRows("ledger_patricia_nodes"))
}
