package jsondb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/masonbrown9/gradebook/core"
)

// DB is a flat JSON document on local disk holding the whole dataset.
// Single-user and single-process: no file locking, every save overwrites
// the whole file.
type DB struct {
	path string
	mu   sync.Mutex
}

func Open(conf *core.Config) (*DB, error) {
	if conf.DataFile == "" {
		return nil, errors.New("jsondb: no data file configured")
	}
	return &DB{path: conf.DataFile}, nil
}

func (db *DB) Path() string {
	return db.path
}
