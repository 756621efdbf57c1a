package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/enrollment"
)

type (
	DB struct {
		batch      *batchTable
		enrollment *enrollmentTable
	}

	batchTable struct {
		sync.RWMutex
		table map[string]*batch.Batch
	}

	enrollmentTable struct {
		sync.RWMutex
		table map[string]*enrollment.Enrollment
	}
)

func Open() (*DB, error) {
	db := &DB{
		batch:      &batchTable{table: make(map[string]*batch.Batch)},
		enrollment: &enrollmentTable{table: make(map[string]*enrollment.Enrollment)},
	}
	return db, nil
}
