package server

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/korthochain/memkv/pkg/storage/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		line string
		cmd  string
		args []string
	}{
		{"SET name Hong", "SET", []string{"name", "Hong"}},
		{"SET name Hong\r\n", "SET", []string{"name", "Hong"}},
		{"  GET\tname  ", "GET", []string{"name"}},
		{"GET name extra", "GET", []string{"name"}},
		{"DELETE name", "DELETE", []string{"name"}},
		{"SET a b c d", "SET", []string{"a", "b"}},
	}

	for _, tt := range tests {
		req, err := parseRequest([]byte(tt.line))
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.cmd, req.cmd, tt.line)
		assert.Equal(t, tt.args, req.args, tt.line)
	}
}

func TestParseRequestInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"   \r\n",
		"BOGUS",
		"PING",
		"SET onlykey",
		"GET",
		"DELETE",
		"set name Hong",
	} {
		_, err := parseRequest([]byte(line))
		assert.ErrorIs(t, err, ErrInvalidCommand, "%q", line)
	}
}

func TestParseRequestTruncates(t *testing.T) {
	key := strings.Repeat("k", store.MaxLen+20)
	val := strings.Repeat("v", store.MaxLen+1)

	req, err := parseRequest([]byte("SET " + key + " " + val))
	require.NoError(t, err)
	assert.Equal(t, key[:store.MaxLen], req.args[0])
	assert.Equal(t, val[:store.MaxLen], req.args[1])

	// an over-long command name never matches a known command
	_, err = parseRequest([]byte("SET" + strings.Repeat("X", store.MaxLen) + " a b"))
	assert.ErrorIs(t, err, ErrInvalidCommand)
}

func TestReadRequest(t *testing.T) {
	data, err := readRequest(strings.NewReader("GET name"), BufferSize)
	require.NoError(t, err)
	assert.Equal(t, "GET name", string(data))

	// one read, bounded by the buffer
	data, err = readRequest(bytes.NewReader(bytes.Repeat([]byte("a"), 2*BufferSize)), BufferSize)
	require.NoError(t, err)
	assert.Len(t, data, BufferSize)

	_, err = readRequest(strings.NewReader(""), BufferSize)
	assert.ErrorIs(t, err, io.EOF)
}

func TestResponseBytes(t *testing.T) {
	resp := new(response)

	resp.respOK()
	assert.Equal(t, []byte("OK"), resp.bytes())
	resp.respValue("Hong")
	assert.Equal(t, []byte("Hong"), resp.bytes())
	resp.respNotFound()
	assert.Equal(t, []byte("NOT_FOUND"), resp.bytes())
	resp.respError()
	assert.Equal(t, []byte("ERROR"), resp.bytes())
}
