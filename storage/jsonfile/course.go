package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
)

// persisted document layout: a mapping from course name to course record.
// JSON objects carry no order, so load falls back to sorted names; grade
// sequences keep their recording order exactly.
type (
	sectionDoc struct {
		Name   string    `json:"name"`
		Weight float64   `json:"weight"`
		Grades []float64 `json:"grades"`
	}

	courseDoc struct {
		Name     string                `json:"name"`
		Sections map[string]sectionDoc `json:"sections"`
	}
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

// LoadAllCourses reads the whole dataset. An absent file is an empty
// dataset; a malformed one is a hard error for the caller to die on.
func (repo *courseRepository) LoadAllCourses(ctx context.Context) ([]*course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	raw, err := ioutil.ReadFile(repo.db.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*course.Course{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", repo.db.path)
	}

	var docs map[string]courseDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, errors.Wrapf(err, "corrupt data file %s", repo.db.path)
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	courses := make([]*course.Course, 0, len(names))
	for _, name := range names {
		courses = append(courses, fromDoc(docs[name]))
	}
	return courses, nil
}

// SaveAllCourses overwrites the whole dataset.
func (repo *courseRepository) SaveAllCourses(ctx context.Context, courses []*course.Course) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	docs := make(map[string]courseDoc, len(courses))
	for _, c := range courses {
		docs[c.Name] = toDoc(c)
	}
	raw, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshalling courses")
	}
	if err := ioutil.WriteFile(repo.db.path, raw, 0644); err != nil {
		// a failed write-through leaves persisted state behind in-memory
		// state; nothing recoverable remains for long-running callers
		return core.NewShutdownError(fmt.Sprintf("writing %s: %v", repo.db.path, err))
	}
	return nil
}

func toDoc(c *course.Course) courseDoc {
	doc := courseDoc{
		Name:     c.Name,
		Sections: make(map[string]sectionDoc, len(c.SectionNames())),
	}
	for _, sec := range c.Sections() {
		doc.Sections[sec.Name] = sectionDoc{
			Name:   sec.Name,
			Weight: sec.Weight,
			Grades: sec.Grades,
		}
	}
	return doc
}

func fromDoc(doc courseDoc) *course.Course {
	c := course.New(doc.Name)

	names := make([]string, 0, len(doc.Sections))
	for name := range doc.Sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sdoc := doc.Sections[name]
		sec := &course.Section{Name: sdoc.Name, Weight: sdoc.Weight, Grades: make([]float64, 0)}
		// a missing "grades" key restores as an empty sequence
		if sdoc.Grades != nil {
			sec.Grades = sdoc.Grades
		}
		c.PutSection(sec)
	}
	return c
}
