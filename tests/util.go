package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
	dummymail "github.com/masonbrown9/gradebook/services/email/dummy"
	logsvc "github.com/masonbrown9/gradebook/services/logger"
	inmemdb "github.com/masonbrown9/gradebook/storage/inmem"
)

// NewCourseService wires a course.Service to in-memory storage and the
// dummy mail backend.
func NewCourseService(t *testing.T) (*course.Service, course.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewCourseService() failed: %v", err)
	}
	repo := inmemdb.NewCourseRepository(db)
	svc := course.NewService(repo, dummymail.NewService(), logsvc.NewKitLogger(core.Conf, io.Discard))
	return svc, repo
}

// CreateCourse registers a course with the given sections.
func CreateCourse(t *testing.T, svc *course.Service, name string, sections ...*course.Section) *course.Course {
	c := course.New(name)
	for _, sec := range sections {
		c.PutSection(sec)
	}
	if err := svc.AddCourse(context.Background(), c); err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return c
}

// NewSectionWithGrades builds a section with pre-recorded grades.
func NewSectionWithGrades(name string, weight float64, grades ...float64) *course.Section {
	sec := &course.Section{Name: name, Weight: weight, Grades: make([]float64, 0, len(grades))}
	for _, g := range grades {
		sec.AddGrade(g)
	}
	return sec
}
