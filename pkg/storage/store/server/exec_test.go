package server

import (
	"testing"

	"github.com/korthochain/memkv/pkg/metrics"
	"github.com/korthochain/memkv/pkg/storage/store"
	"github.com/korthochain/memkv/pkg/storage/store/mem"
	"github.com/stretchr/testify/assert"
)

func exec(db store.DB, line string) *response {
	resp := new(response)
	req, err := parseRequest([]byte(line))
	if err != nil {
		resp.respError()
		return resp
	}
	dealRegister[req.cmd](db, resp, req.args)
	return resp
}

func TestDealRegister(t *testing.T) {
	assert := assert.New(t)
	db := mem.New()

	steps := []struct {
		line, reply, result string
	}{
		{"SET name Hong", "OK", metrics.ResultOK},
		{"GET name", "Hong", metrics.ResultOK},
		{"SET name Kim", "OK", metrics.ResultOK},
		{"GET name", "Kim", metrics.ResultOK},
		{"DELETE name", "OK", metrics.ResultOK},
		{"GET name", "NOT_FOUND", metrics.ResultNotFound},
		{"DELETE name", "OK", metrics.ResultOK},
		{"PING", "ERROR", metrics.ResultError},
	}
	for _, st := range steps {
		resp := exec(db, st.line)
		assert.Equal(st.reply, resp.payload, st.line)
		assert.Equal(st.result, resp.result, st.line)
	}
}

func TestMalformedLeavesStoreAlone(t *testing.T) {
	db := mem.New()
	db.Set("keep", "me")

	for _, line := range []string{"BOGUS", "SET onlykey", "DELETE"} {
		assert.Equal(t, "ERROR", exec(db, line).payload)
	}

	assert.Equal(t, 1, db.Len())
	v, err := db.Get("keep")
	assert.NoError(t, err)
	assert.Equal(t, "me", v)
	_, err = db.Get("onlykey")
	assert.ErrorIs(t, err, store.ErrNotExist)
}

func TestDealShortArgs(t *testing.T) {
	db := mem.New()
	for name, f := range dealRegister {
		resp := new(response)
		f(db, resp, nil)
		assert.Equal(t, "ERROR", resp.payload, name)
	}
	assert.Equal(t, 0, db.Len())
}
