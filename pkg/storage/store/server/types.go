package server

import (
	"net"
	"sync"

	"github.com/korthochain/memkv/pkg/metrics"
	"github.com/korthochain/memkv/pkg/storage/store"
)

// Admitter decides whether an accepted connection is served at all.
type Admitter interface {
	Admit(net.Addr) bool
}

type responseWriter interface {
	respOK()
	respValue(string)
	respNotFound()
	respError()
}

type Server struct {
	db      store.DB
	lis     net.Listener
	bufSize int
	admit   Admitter
	metrics *metrics.Metrics

	quit     chan struct{}
	stopOnce sync.Once
}

type Option func(*Server)

type request struct {
	cmd  string
	args []string
}

type response struct {
	payload string
	result  string
}

type dealFunc func(store.DB, responseWriter, []string)

var dealRegister map[string]dealFunc
