package course

import (
	"fmt"
	"strings"
)

// Section is a weighted grading category within a Course (e.g. "Homework").
// Weight is a percentage; sibling weights are not required to total 100.
// Grades are kept in recording order and are deliberately not range-checked:
// negative scores and scores above 100 (extra credit) are accepted as-is.
type Section struct {
	Name   string    `json:"name"`
	Weight float64   `json:"weight"`
	Grades []float64 `json:"grades"`
}

// AddGrade records an assignment grade.
func (s *Section) AddGrade(grade float64) {
	s.Grades = append(s.Grades, grade)
}

// Average returns the arithmetic mean of the recorded grades.
// 0.0 is a sentinel for "no grades recorded", not a real average;
// callers that must tell the two apart check len(s.Grades) themselves.
func (s *Section) Average() float64 {
	if len(s.Grades) == 0 {
		return 0.0
	}
	var sum float64
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades))
}

func (s *Section) String() string {
	return fmt.Sprintf("%s: Weight = %g%%, Average = %.2f, Grades = %v", s.Name, s.Weight, s.Average(), s.Grades)
}

// Course owns a set of named Sections. Sections enumerate in insertion
// order via an explicit name list so that position-based selection in the
// shell is stable across a session.
type Course struct {
	Name string `json:"name"`

	names    []string
	sections map[string]*Section
}

func New(name string) *Course {
	return &Course{
		Name:     name,
		names:    make([]string, 0),
		sections: make(map[string]*Section),
	}
}

// PutSection inserts sec, or replaces the section of the same name in place.
func (c *Course) PutSection(sec *Section) {
	if _, ok := c.sections[sec.Name]; !ok {
		c.names = append(c.names, sec.Name)
	}
	c.sections[sec.Name] = sec
}

// AddSection defines a new grading category. If a section named name already
// exists, only its weight is replaced; recorded grades are kept. The returned
// bool reports whether an existing section was updated.
func (c *Course) AddSection(name string, weight float64) (updated bool) {
	if sec, ok := c.sections[name]; ok {
		sec.Weight = weight
		return true
	}
	c.PutSection(&Section{Name: name, Weight: weight, Grades: make([]float64, 0)})
	return false
}

// AddAssignmentGrade records a grade in the named section.
// Returns ErrSectionNotFound and leaves state unchanged if the section is absent.
func (c *Course) AddAssignmentGrade(sectionName string, grade float64) error {
	sec, ok := c.sections[sectionName]
	if !ok {
		return ErrSectionNotFound
	}
	sec.AddGrade(grade)
	return nil
}

// UpdateSectionWeight replaces the named section's weight in place.
func (c *Course) UpdateSectionWeight(sectionName string, newWeight float64) error {
	sec, ok := c.sections[sectionName]
	if !ok {
		return ErrSectionNotFound
	}
	sec.Weight = newWeight
	return nil
}

// Section returns the named section, if it exists.
func (c *Course) Section(name string) (*Section, bool) {
	sec, ok := c.sections[name]
	return sec, ok
}

// Sections returns all sections in insertion order.
func (c *Course) Sections() []*Section {
	secs := make([]*Section, 0, len(c.names))
	for _, name := range c.names {
		secs = append(secs, c.sections[name])
	}
	return secs
}

// SectionNames returns all section names in insertion order.
func (c *Course) SectionNames() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// OverallGrade is the worst-case final grade: every section contributes
// average * weight/100, so a section with no grades counts as a zero score
// while its weight still counts.
func (c *Course) OverallGrade() float64 {
	overall := 0.0
	for _, name := range c.names {
		sec := c.sections[name]
		overall += sec.Average() * (sec.Weight / 100)
	}
	return overall
}

// CurrentGrade is the weighted average over sections that have at least one
// recorded grade, with weights normalized to the graded sections only.
// ok is false when no section has any grade yet; this "no data" signal is
// never conflated with an earned grade of 0.
func (c *Course) CurrentGrade() (grade float64, ok bool) {
	totalWeight := 0.0
	totalScore := 0.0
	for _, name := range c.names {
		sec := c.sections[name]
		if len(sec.Grades) > 0 {
			totalScore += sec.Average() * sec.Weight
			totalWeight += sec.Weight
		}
	}
	if totalWeight == 0 {
		return 0, false
	}
	return totalScore / totalWeight, true
}

// LetterGrade maps a numeric grade to a letter. Thresholds are
// inclusive lower bounds on the raw value; no rounding is applied first.
func LetterGrade(grade float64) string {
	switch {
	case grade >= 90:
		return "A"
	case grade >= 80:
		return "B"
	case grade >= 70:
		return "C"
	case grade >= 60:
		return "D"
	default:
		return "F"
	}
}

// Status renders a human-readable report of every section's stats plus the
// current and worst-case grades with their letters. Read-only.
func (c *Course) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Grading Status for Course: %s ---\n", c.Name)
	for _, sec := range c.Sections() {
		fmt.Fprintf(&b, "%s\n", sec)
	}
	if current, ok := c.CurrentGrade(); ok {
		fmt.Fprintf(&b, "Grade Achieved So Far: %.2f%% (%s)\n", current, LetterGrade(current))
	} else {
		b.WriteString("Grade Achieved So Far: No grades entered yet.\n")
	}
	overall := c.OverallGrade()
	fmt.Fprintf(&b, "Final Grade (if remaining sections score 0): %.2f%% (%s)\n", overall, LetterGrade(overall))
	return b.String()
}
