package inmemdb

import (
	"sync"

	"github.com/masonbrown9/gradebook/core/course"
)

type (
	DB struct {
		course *courseTable
	}

	courseTable struct {
		sync.RWMutex
		docs []*course.Course
	}
)

func Open() (*DB, error) {
	db := &DB{
		course: &courseTable{docs: make([]*course.Course, 0)},
	}
	return db, nil
}
