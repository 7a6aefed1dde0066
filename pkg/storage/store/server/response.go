package server

import "github.com/korthochain/memkv/pkg/metrics"

const (
	replyOK       = "OK"
	replyNotFound = "NOT_FOUND"
	replyError    = "ERROR"
)

func (resp *response) respOK() {
	resp.payload, resp.result = replyOK, metrics.ResultOK
}

func (resp *response) respValue(v string) {
	resp.payload, resp.result = v, metrics.ResultOK
}

func (resp *response) respNotFound() {
	resp.payload, resp.result = replyNotFound, metrics.ResultNotFound
}

func (resp *response) respError() {
	resp.payload, resp.result = replyError, metrics.ResultError
}

// bytes is the reply as written to the wire, without a trailing delimiter.
func (resp *response) bytes() []byte {
	return []byte(resp.payload)
}
