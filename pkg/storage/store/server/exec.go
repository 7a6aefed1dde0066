package server

import (
	"errors"

	"github.com/korthochain/memkv/pkg/storage/store"
)

func init() {
	dealRegister = make(map[string]dealFunc)

	dealRegister["SET"] = dealSet
	dealRegister["GET"] = dealGet
	dealRegister["DELETE"] = dealDelete
}

// SET k v
func dealSet(db store.DB, resp responseWriter, args []string) {
	if len(args) < 2 {
		resp.respError()
		return
	}
	db.Set(args[0], args[1])
	resp.respOK()
}

// GET k
func dealGet(db store.DB, resp responseWriter, args []string) {
	if len(args) < 1 {
		resp.respError()
		return
	}
	v, err := db.Get(args[0])
	switch {
	case errors.Is(err, store.ErrNotExist):
		resp.respNotFound()
	case err != nil:
		resp.respError()
	default:
		resp.respValue(v)
	}
}

// DELETE k, absent keys included
func dealDelete(db store.DB, resp responseWriter, args []string) {
	if len(args) < 1 {
		resp.respError()
		return
	}
	db.Del(args[0])
	resp.respOK()
}
