package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofrs/uuid"
	"github.com/korthochain/memkv/pkg/logger"
	"github.com/korthochain/memkv/pkg/metrics"
	"github.com/korthochain/memkv/pkg/storage/store"
	"go.uber.org/zap"
)

const maxAcceptDelay = time.Second

// WithAdmitter filters every accepted connection through a. Refused
// connections are closed without a reply.
func WithAdmitter(a Admitter) Option {
	return func(s *Server) { s.admit = a }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

func WithBufferSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.bufSize = n
		}
	}
}

// New binds address and returns a server that has not started accepting yet.
func New(address string, db store.DB, opts ...Option) (*Server, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", address, err)
	}

	s := &Server{
		db:      db,
		lis:     lis,
		bufSize: BufferSize,
		quit:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(db.Len)
	}
	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Run accepts connections until Stop is called, handing each one to its own
// goroutine. Accept failures are logged and retried; they never end the loop.
func (s *Server) Run() error {
	logger.Info("server listening", zap.String("address", s.lis.Addr().String()))

	var delay time.Duration
	for {
		conn, err := s.lis.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			if delay == 0 {
				delay = 5 * time.Millisecond
			} else if delay *= 2; delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			logger.Error("accept failed", zap.Error(err), zap.Duration("retry", delay))
			time.Sleep(delay)
			continue
		}
		delay = 0

		if s.admit != nil && !s.admit.Admit(conn.RemoteAddr()) {
			s.metrics.Rejected.Inc()
			conn.Close()
			continue
		}

		s.metrics.Accepted.Inc()
		go s.serve(conn)
	}
}

// Stop closes the listener, which makes Run return. Dispatchers already
// running finish on their own.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.lis.Close()
	})
}

// serve handles exactly one request on conn and closes it.
func (s *Server) serve(conn net.Conn) {
	id := connID()
	defer conn.Close()
	s.metrics.Active.Inc()
	defer s.metrics.Active.Dec()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("dispatcher panic", zap.String("conn", id), zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	data, err := readRequest(conn, s.bufSize)
	if err != nil {
		logger.Debug("read request", zap.String("conn", id), zap.Error(err))
		return
	}

	resp := new(response)
	req, err := parseRequest(data)
	if err != nil {
		logger.Debug("bad request", zap.String("conn", id), zap.ByteString("request", data))
		resp.respError()
		s.metrics.Request("INVALID", resp.result)
	} else {
		dealRegister[req.cmd](s.db, resp, req.args)
		s.metrics.Request(req.cmd, resp.result)
	}

	if _, err := conn.Write(resp.bytes()); err != nil {
		logger.Debug("write response", zap.String("conn", id), zap.Error(err))
	}
}

func connID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
