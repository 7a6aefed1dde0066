package server

import (
	"sync"
	"time"

	"github.com/bluele/gcache"
	"golang.org/x/time/rate"
)

const cacheSize = 1000

// IPLimiter keeps one token bucket per remote IP. Buckets live in an LRU,
// so an IP evicted by newer clients starts again with a full bucket.
type IPLimiter struct {
	cache gcache.Cache
	mu    *sync.Mutex
	r     rate.Limit
	b     int

	whiteList map[string]struct{}
}

func NewIPLimiter(r rate.Limit, b int, whiteList []string) *IPLimiter {
	wl := make(map[string]struct{}, len(whiteList))
	for _, ip := range whiteList {
		wl[ip] = struct{}{}
	}
	return &IPLimiter{
		cache:     gcache.New(cacheSize).LRU().Build(),
		mu:        &sync.Mutex{},
		r:         r,
		b:         b,
		whiteList: wl,
	}
}

func (i *IPLimiter) addIP(ip string) *rate.Limiter {
	limiter := rate.NewLimiter(i.r, i.b)
	i.cache.SetWithExpire(ip, limiter, 24*time.Hour)
	return limiter
}

func (i *IPLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, err := i.cache.Get(ip)
	if err != nil {
		return i.addIP(ip)
	}
	return limiter.(*rate.Limiter)
}
