// Package statusserver exposes read-only runtime state over HTTP.
package statusserver

import (
	"encoding/json"
	"net"

	"github.com/buaazp/fasthttprouter"
	"github.com/korthochain/memkv/pkg/logger"
	"github.com/korthochain/memkv/pkg/metrics"
	"github.com/korthochain/memkv/pkg/storage/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

func NewServer(address string, db store.DB, m *metrics.Metrics) *Server {
	s := &Server{address: address, db: db, m: m, r: fasthttprouter.New()}
	s.r.GET("/status", s.statusHandler)
	s.r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	s.srv = &fasthttp.Server{Handler: s.r.Handler, Name: "memkv"}
	return s
}

// RunServer listens on the configured address and serves until Shutdown.
func (s *Server) RunServer() error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		logger.Error("failed to listen port", zap.Error(err), zap.String("address", s.address))
		return err
	}
	return s.Serve(ln)
}

func (s *Server) Serve(ln net.Listener) error {
	logger.Info("status server listening", zap.String("address", ln.Addr().String()))
	return s.srv.Serve(ln)
}

func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

func (s *Server) statusHandler(ctx *fasthttp.RequestCtx) {
	body, err := json.Marshal(&statusInfo{Keys: s.db.Len(), Snapshot: s.m.Snapshot()})
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.Write(body)
}
