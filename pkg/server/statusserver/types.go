package statusserver

import (
	"github.com/buaazp/fasthttprouter"
	"github.com/korthochain/memkv/pkg/metrics"
	"github.com/korthochain/memkv/pkg/storage/store"
	"github.com/valyala/fasthttp"
)

type Server struct {
	address string
	db      store.DB
	m       *metrics.Metrics
	r       *fasthttprouter.Router
	srv     *fasthttp.Server
}

type statusInfo struct {
	Keys int `json:"keys"`
	metrics.Snapshot
}
