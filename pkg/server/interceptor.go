package server

import (
	"net"

	"github.com/korthochain/memkv/pkg/logger"
	"go.uber.org/zap"
)

// Admit reports whether a connection from addr may be served. Whitelisted
// IPs always pass.
func (i *IPLimiter) Admit(addr net.Addr) bool {
	ip := hostOf(addr)
	if _, ok := i.whiteList[ip]; ok {
		return true
	}

	if !i.getLimiter(ip).Allow() {
		logger.Debug("ip limited", zap.String("ip", ip))
		return false
	}
	return true
}

func hostOf(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
