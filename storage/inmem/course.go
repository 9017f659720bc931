package inmemdb

import (
	"context"

	"github.com/masonbrown9/gradebook/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) LoadAllCourses(ctx context.Context) ([]*course.Course, error) {
	repo.db.course.RLock()
	defer repo.db.course.RUnlock()

	courses := make([]*course.Course, 0, len(repo.db.course.docs))
	for _, c := range repo.db.course.docs {
		courses = append(courses, clone(c))
	}
	return courses, nil
}

func (repo *courseRepository) SaveAllCourses(ctx context.Context, courses []*course.Course) error {
	repo.db.course.Lock()
	defer repo.db.course.Unlock()

	docs := make([]*course.Course, 0, len(courses))
	for _, c := range courses {
		docs = append(docs, clone(c))
	}
	repo.db.course.docs = docs
	return nil
}

// clone deep-copies c so callers never alias the stored dataset.
func clone(c *course.Course) *course.Course {
	cp := course.New(c.Name)
	for _, sec := range c.Sections() {
		scp := &course.Section{
			Name:   sec.Name,
			Weight: sec.Weight,
			Grades: append(make([]float64, 0, len(sec.Grades)), sec.Grades...),
		}
		cp.PutSection(scp)
	}
	return cp
}
