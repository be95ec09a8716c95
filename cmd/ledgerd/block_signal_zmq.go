//go:build zmq

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const (
	zmqHashBlockTopic = "hashblock"
	zmqRecvTimeout    = 5 * time.Second
	zmqRetryDelay     = time.Second
)

// startBlockSignal wakes the follower whenever bitcoind announces a new block.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sock, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, fmt.Errorf("create zmq socket: %w", err)
	}
	// A bounded receive lets the loop notice cancellation.
	if err := sock.SetRcvtimeo(zmqRecvTimeout); err != nil {
		sock.Close()
		return nil, fmt.Errorf("set zmq receive timeout: %w", err)
	}
	if err := sock.SetSubscribe(zmqHashBlockTopic); err != nil {
		sock.Close()
		return nil, fmt.Errorf("subscribe %s: %w", zmqHashBlockTopic, err)
	}
	if err := sock.Connect(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}

	s := &blockSignal{
		sock:   sock,
		notify: make(chan struct{}, 1),
		logger: logger.Named("blockSignal").With(zap.String("addr", addr)),
	}
	go s.run(ctx)
	return s.notify, nil
}

type blockSignal struct {
	sock    *zmq4.Socket
	notify  chan struct{}
	logger  *zap.Logger
	lastSeq uint32
	seen    bool
}

func (s *blockSignal) run(ctx context.Context) {
	defer s.sock.Close()
	for ctx.Err() == nil {
		frames, err := s.sock.RecvMessageBytes(0)
		if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
			continue
		}
		if err != nil {
			s.logger.Warn("zmq recv failed", zap.Error(err))
			time.Sleep(zmqRetryDelay)
			continue
		}
		hash, seq, ok := parseHashBlock(frames)
		if !ok {
			s.logger.Warn("skip malformed hashblock message", zap.Int("frames", len(frames)))
			continue
		}
		if s.seen && seq != s.lastSeq+1 {
			s.logger.Info("hashblock notifications missed", zap.Uint32("last", s.lastSeq), zap.Uint32("got", seq))
		}
		s.lastSeq, s.seen = seq, true
		s.logger.Debug("new block announced", zap.Stringer("hash", hash))

		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
}

// parseHashBlock reads topic, a 32-byte hash in display order and a
// little-endian sequence number.
func parseHashBlock(frames [][]byte) (chainhash.Hash, uint32, bool) {
	if len(frames) < 3 || len(frames[1]) != chainhash.HashSize || len(frames[2]) != 4 {
		return chainhash.Hash{}, 0, false
	}
	var hash chainhash.Hash
	for i, b := range frames[1] {
		hash[chainhash.HashSize-1-i] = b
	}
	return hash, binary.LittleEndian.Uint32(frames[2]), true
}
