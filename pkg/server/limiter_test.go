package server

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestAdmitBurst(t *testing.T) {
	assert := assert.New(t)
	l := NewIPLimiter(rate.Every(time.Hour), 2, nil)
	addr := &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 40000}

	assert.True(l.Admit(addr))
	assert.True(l.Admit(addr))
	assert.False(l.Admit(addr))

	// buckets are per IP, not per port
	assert.False(l.Admit(&net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 40001}))
	assert.True(l.Admit(&net.TCPAddr{IP: net.ParseIP("10.0.0.8"), Port: 40000}))
}

func TestAdmitWhiteList(t *testing.T) {
	l := NewIPLimiter(rate.Every(time.Hour), 0, []string{"127.0.0.1"})
	local := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 1}

	for i := 0; i < 10; i++ {
		assert.True(t, l.Admit(local))
	}
	assert.False(t, l.Admit(&net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 1}))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "::1", hostOf(&net.TCPAddr{IP: net.ParseIP("::1"), Port: 5}))
	assert.Equal(t, "example", hostOf(&net.UnixAddr{Name: "example", Net: "unix"}))
}
