package server

import (
	"errors"
	"io"
	"strings"

	"github.com/korthochain/memkv/pkg/storage/store"
)

// BufferSize is the default upper bound on a single request read.
const BufferSize = 1024

const maxTokens = 3

var (
	ErrEmptyRequest   = errors.New("empty request")
	ErrInvalidCommand = errors.New("invalid command")
)

// minTokens is the token count, command name included, each command needs.
var minTokens = map[string]int{
	"SET":    3,
	"GET":    2,
	"DELETE": 2,
}

// readRequest performs exactly one read; the whole request is expected to
// arrive in it.
func readRequest(r io.Reader, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := r.Read(buf)
	if n == 0 {
		if err == nil {
			err = ErrEmptyRequest
		}
		return nil, err
	}
	return buf[:n], nil
}

// parseRequest splits a request line into at most three whitespace separated
// tokens, each silently clipped to store.MaxLen bytes. Tokens past the third
// are ignored.
func parseRequest(line []byte) (*request, error) {
	fields := strings.Fields(string(line))
	if len(fields) > maxTokens {
		fields = fields[:maxTokens]
	}
	for i := range fields {
		fields[i] = store.Clip(fields[i])
	}

	if len(fields) == 0 {
		return nil, ErrInvalidCommand
	}
	need, ok := minTokens[fields[0]]
	if !ok || len(fields) < need {
		return nil, ErrInvalidCommand
	}
	return &request{cmd: fields[0], args: fields[1:need]}, nil
}
