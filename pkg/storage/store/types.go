package store

import "errors"

// MaxLen is the upper bound, in bytes, of every key and value held by a DB.
const MaxLen = 255

var (
	ErrNotExist = errors.New("NotExist")
)

// DB is the shared record mapping. Every method is atomic with respect to
// every other method; there is no multi-call transaction.
type DB interface {
	// kv
	Set(key, value string)
	Get(key string) (string, error)
	Del(key string)

	Len() int
}

// Clip cuts s down to MaxLen bytes.
func Clip(s string) string {
	if len(s) > MaxLen {
		return s[:MaxLen]
	}
	return s
}
