package course

import (
	"context"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/masonbrown9/gradebook/core"
)

var (
	// errors
	ErrCourseNotFound    = errors.New("course not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrCourseExists      = errors.New("a course with this name already exists")
	ErrNoReportRecipient = errors.New("no report recipient configured")
)

type (
	// Repository is the persistence adapter: it loads and saves the whole
	// dataset in one shot. An absent backing store loads as an empty dataset;
	// a corrupt one is a hard error.
	Repository interface {
		LoadAllCourses(ctx context.Context) ([]*Course, error)
		SaveAllCourses(ctx context.Context, courses []*Course) error
	}

	// Service manages the course collection. Courses are keyed by name and
	// enumerate in creation order; adding a course with an existing name
	// overwrites it. Every mutation writes the whole dataset through to the
	// Repository immediately.
	Service struct {
		repo    Repository
		mailSvc core.EmailService
		log     core.Logger

		names   []string
		courses map[string]*Course
	}
)

func NewService(repo Repository, mailSvc core.EmailService, log core.Logger) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		log:     log,
		names:   make([]string, 0),
		courses: make(map[string]*Course),
	}
}

// Load replaces the in-memory dataset with the persisted one.
func (svc *Service) Load(ctx context.Context) error {
	courses, err := svc.repo.LoadAllCourses(ctx)
	if err != nil {
		return errors.Wrap(err, "loading courses")
	}
	svc.names = make([]string, 0, len(courses))
	svc.courses = make(map[string]*Course, len(courses))
	for _, c := range courses {
		svc.put(c)
	}
	return nil
}

// Save writes the whole dataset through to the repository.
func (svc *Service) Save(ctx context.Context) error {
	if err := svc.repo.SaveAllCourses(ctx, svc.Courses()); err != nil {
		return errors.Wrap(err, "saving courses")
	}
	return nil
}

func (svc *Service) put(c *Course) {
	if _, ok := svc.courses[c.Name]; !ok {
		svc.names = append(svc.names, c.Name)
	}
	svc.courses[c.Name] = c
}

// AddCourse inserts c, overwriting any course of the same name, and persists.
func (svc *Service) AddCourse(ctx context.Context, c *Course) error {
	svc.put(c)
	return svc.Save(ctx)
}

// CheckNameUniqueness reports ErrCourseExists as a ValidationError so that
// callers that refuse overwrites can surface it on the name field.
func (svc *Service) CheckNameUniqueness(name string) error {
	if _, ok := svc.courses[name]; ok {
		return core.NewValidationError(ErrCourseExists, core.FieldError{Field: "name", Error: ErrCourseExists.Error()})
	}
	return nil
}

// GetByIndex looks up a course by its position in the creation-ordered
// listing. Returns ErrCourseNotFound when index is out of [0, count).
func (svc *Service) GetByIndex(index int) (*Course, error) {
	if index < 0 || index >= len(svc.names) {
		return nil, ErrCourseNotFound
	}
	return svc.courses[svc.names[index]], nil
}

func (svc *Service) GetByName(name string) (*Course, error) {
	if c, ok := svc.courses[name]; ok {
		return c, nil
	}
	return nil, ErrCourseNotFound
}

// ListCourses returns all course names in creation order.
func (svc *Service) ListCourses() []string {
	names := make([]string, len(svc.names))
	copy(names, svc.names)
	return names
}

// Courses returns all courses in creation order.
func (svc *Service) Courses() []*Course {
	courses := make([]*Course, 0, len(svc.names))
	for _, name := range svc.names {
		courses = append(courses, svc.courses[name])
	}
	return courses
}

// AddSection defines a grading category on the named course and persists.
// The returned bool reports whether an existing section's weight was
// updated in place (grades kept) rather than a new section created.
func (svc *Service) AddSection(ctx context.Context, courseName, sectionName string, weight float64) (updated bool, err error) {
	c, err := svc.GetByName(courseName)
	if err != nil {
		return false, err
	}
	updated = c.AddSection(sectionName, weight)
	return updated, svc.Save(ctx)
}

// AddAssignmentGrade records a grade in the named course section and persists.
func (svc *Service) AddAssignmentGrade(ctx context.Context, courseName, sectionName string, grade float64) error {
	c, err := svc.GetByName(courseName)
	if err != nil {
		return err
	}
	if err := c.AddAssignmentGrade(sectionName, grade); err != nil {
		return err
	}
	return svc.Save(ctx)
}

// UpdateSectionWeight replaces a section's weight in place and persists.
func (svc *Service) UpdateSectionWeight(ctx context.Context, courseName, sectionName string, newWeight float64) error {
	c, err := svc.GetByName(courseName)
	if err != nil {
		return err
	}
	if err := c.UpdateSectionWeight(sectionName, newWeight); err != nil {
		return err
	}
	return svc.Save(ctx)
}

// SendSnapshot emails the grades snapshot to the configured recipient.
func (svc *Service) SendSnapshot() error {
	if core.Conf.ReportEmail.Address == "" {
		return ErrNoReportRecipient
	}
	snapshot, err := svc.Snapshot()
	if err != nil {
		return err
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{core.Conf.ReportEmail},
		Subject: "Grades Snapshot",
		BodyStr: snapshot,
	})
	svc.log.Info("grades snapshot sent", map[string]interface{}{"to": core.Conf.ReportEmail.Address})
	return nil
}
