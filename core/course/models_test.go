package course

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSection_Average(t *testing.T) {
	tests := []struct {
		name   string
		grades []float64
		want   float64
	}{
		{name: "no grades is the 0.0 sentinel", grades: nil, want: 0},
		{name: "single grade", grades: []float64{87}, want: 87},
		{name: "mean of several", grades: []float64{80, 90}, want: 85},
		{name: "negative grades accepted", grades: []float64{-10, 10}, want: 0},
		{name: "extra credit accepted", grades: []float64{105, 95}, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := &Section{Name: "HW", Weight: 40, Grades: make([]float64, 0)}
			for _, g := range tt.grades {
				sec.AddGrade(g)
			}
			if got := sec.Average(); !almostEqual(got, tt.want) {
				t.Errorf("Average() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCourse_AddSection(t *testing.T) {
	c := New("Algorithms")

	if updated := c.AddSection("HW", 40); updated {
		t.Error("AddSection() reported an update for a new section")
	}
	if err := c.AddAssignmentGrade("HW", 80); err != nil {
		t.Fatalf("AddAssignmentGrade() failed: %v", err)
	}

	// re-adding replaces the weight in place and keeps the grades
	if updated := c.AddSection("HW", 55); !updated {
		t.Error("AddSection() did not report an update for an existing section")
	}
	sec, ok := c.Section("HW")
	if !ok {
		t.Fatal("Section() did not find HW")
	}
	if sec.Weight != 55 {
		t.Errorf("Weight = %v, want 55", sec.Weight)
	}
	if len(sec.Grades) != 1 || sec.Grades[0] != 80 {
		t.Errorf("Grades = %v, want [80]", sec.Grades)
	}
	if names := c.SectionNames(); len(names) != 1 {
		t.Errorf("SectionNames() = %v, want exactly one entry", names)
	}
}

func TestCourse_sectionOrder(t *testing.T) {
	c := New("Algorithms")
	c.AddSection("HW", 20)
	c.AddSection("Quizzes", 20)
	c.AddSection("Exam", 60)
	c.AddSection("HW", 25) // weight update must not reorder

	want := []string{"HW", "Quizzes", "Exam"}
	got := c.SectionNames()
	if len(got) != len(want) {
		t.Fatalf("SectionNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SectionNames()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCourse_missingSection(t *testing.T) {
	c := New("Algorithms")
	c.AddSection("HW", 40)

	if err := c.AddAssignmentGrade("Exam", 90); err != ErrSectionNotFound {
		t.Errorf("AddAssignmentGrade() error = %v, want ErrSectionNotFound", err)
	}
	if err := c.UpdateSectionWeight("Exam", 60); err != ErrSectionNotFound {
		t.Errorf("UpdateSectionWeight() error = %v, want ErrSectionNotFound", err)
	}
	// state unchanged
	sec, _ := c.Section("HW")
	if len(sec.Grades) != 0 || sec.Weight != 40 {
		t.Errorf("state changed after failed operations: %+v", sec)
	}
}

func TestCourse_grades(t *testing.T) {
	// HW weight=40 grades=[80,90]; Exam weight=60 ungraded
	c := New("Algorithms")
	c.AddSection("HW", 40)
	c.AddSection("Exam", 60)
	_ = c.AddAssignmentGrade("HW", 80)
	_ = c.AddAssignmentGrade("HW", 90)

	// current: only HW counts, weight normalized to 40/40
	current, ok := c.CurrentGrade()
	if !ok {
		t.Fatal("CurrentGrade() reported no data")
	}
	if !almostEqual(current, 85) {
		t.Errorf("CurrentGrade() = %v, want 85", current)
	}

	// overall: ungraded Exam counts as a zero score, weight still counted
	if overall := c.OverallGrade(); !almostEqual(overall, 34) {
		t.Errorf("OverallGrade() = %v, want 34", overall)
	}
}

func TestCourse_CurrentGrade_noData(t *testing.T) {
	c := New("Algorithms")
	c.AddSection("HW", 40)
	c.AddSection("Exam", 60)

	// no section graded: the explicit "no data" signal, not a numeric 0
	if _, ok := c.CurrentGrade(); ok {
		t.Error("CurrentGrade() ok = true, want the no-data signal")
	}

	// a real 0% is not "no data"
	_ = c.AddAssignmentGrade("HW", 0)
	current, ok := c.CurrentGrade()
	if !ok {
		t.Fatal("CurrentGrade() conflated a recorded 0 with no data")
	}
	if current != 0 {
		t.Errorf("CurrentGrade() = %v, want 0", current)
	}
}

func TestCourse_OverallGrade_empty(t *testing.T) {
	c := New("Algorithms")
	if overall := c.OverallGrade(); overall != 0 {
		t.Errorf("OverallGrade() = %v, want 0 for a course without sections", overall)
	}
}

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		grade float64
		want  string
	}{
		{90, "A"}, {89.999, "B"},
		{80, "B"}, {79.999, "C"},
		{70, "C"}, {69.999, "D"},
		{60, "D"}, {59.999, "F"},
		{104.5, "A"}, {-5, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := LetterGrade(tt.grade); got != tt.want {
			t.Errorf("LetterGrade(%v) = %s, want %s", tt.grade, got, tt.want)
		}
	}
}

func TestCourse_Status(t *testing.T) {
	c := New("Algorithms")
	c.AddSection("HW", 40)
	c.AddSection("Exam", 60)
	_ = c.AddAssignmentGrade("HW", 80)
	_ = c.AddAssignmentGrade("HW", 90)

	status := c.Status()
	for _, want := range []string{
		"--- Grading Status for Course: Algorithms ---",
		"HW: Weight = 40%, Average = 85.00, Grades = [80 90]",
		"Exam: Weight = 60%, Average = 0.00, Grades = []",
		"Grade Achieved So Far: 85.00% (B)",
		"Final Grade (if remaining sections score 0): 34.00% (F)",
	} {
		if !strings.Contains(status, want) {
			t.Errorf("Status() missing %q in:\n%s", want, status)
		}
	}
}

func TestCourse_Status_noGrades(t *testing.T) {
	c := New("Algorithms")
	c.AddSection("HW", 40)

	if status := c.Status(); !strings.Contains(status, "Grade Achieved So Far: No grades entered yet.") {
		t.Errorf("Status() missing the no-data line in:\n%s", status)
	}
}
