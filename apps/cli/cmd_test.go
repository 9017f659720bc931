package main

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
	dummymail "github.com/masonbrown9/gradebook/services/email/dummy"
	testutil "github.com/masonbrown9/gradebook/tests"
)

func setup(t *testing.T, input string) (*commandLine, *bytes.Buffer) {
	svc, _ := testutil.NewCourseService(t)
	out := new(bytes.Buffer)
	return &commandLine{
		svc: svc,
		in:  strings.NewReader(input),
		out: out,
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func Test_commandLine_run(t *testing.T) {
	origReportEmail := core.Conf.ReportEmail
	defer func() { core.Conf.ReportEmail = origReportEmail }()
	core.Conf.ReportEmail = mail.Address{}

	tests := []cliTest{
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: "Usage:"},
		{name: "snapshot: empty dataset", args: []string{"snapshot"}, wantOut: "No courses available yet."},
		{name: "report: no recipient configured", args: []string{"report"}, wantErr: course.ErrNoReportRecipient},
		{name: "report: bad address", args: []string{"report", "-to", "lol"}, wantErrStr: `invalid recipient address "lol"`},
		{name: "report: explicit recipient", args: []string{"report", "-to", "me@test.cd"}},
	}
	for _, tt := range tests {
		args := append([]string{"gradebook"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, "")
			dummymail.Reset()

			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if tt.wantErrStr != "" {
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			} else if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("cli.run() output missing %q in:\n%s", tt.wantOut, out.String())
			}
		})
	}
}

func Test_commandLine_report(t *testing.T) {
	origReportEmail := core.Conf.ReportEmail
	defer func() { core.Conf.ReportEmail = origReportEmail }()
	core.Conf.ReportEmail = mail.Address{}

	cli, _ := setup(t, "")
	testutil.CreateCourse(t, cli.svc, "Algorithms", testutil.NewSectionWithGrades("HW", 100, 91))

	dummymail.Reset()
	if err := cli.run([]string{"gradebook", "report", "-to", "me@test.cd"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	if len(dummymail.SentMessages) != 1 {
		t.Fatalf("SentMessages = %d, want 1", len(dummymail.SentMessages))
	}
	if !strings.Contains(dummymail.SentMessages[0].TextContent, "91.00% (A)") {
		t.Errorf("report body = %q", dummymail.SentMessages[0].TextContent)
	}
}

func Test_commandLine_mainMenu(t *testing.T) {
	// add a course with two sections, record HW grades, then quit
	script := strings.Join([]string{
		"2",          // add a new course
		"Algorithms", // course name
		"HW", "40",   // first section
		"Exam", "60", // second section
		"done",
		"1", "1", // select course #1
		"1", "1", // add grades to section #1 (HW)
		"80", "90", "done",
		"4", // return to course selection
		"4", // quit
	}, "\n") + "\n"

	cli, out := setup(t, script)
	if err := cli.run([]string{"gradebook"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}

	c, err := cli.svc.GetByName("Algorithms")
	if err != nil {
		t.Fatalf("course was not created: %v", err)
	}
	hw, ok := c.Section("HW")
	if !ok {
		t.Fatal("section HW was not created")
	}
	if len(hw.Grades) != 2 || hw.Grades[0] != 80 || hw.Grades[1] != 90 {
		t.Errorf("HW.Grades = %v, want [80 90]", hw.Grades)
	}
	exam, ok := c.Section("Exam")
	if !ok {
		t.Fatal("section Exam was not created")
	}
	if exam.Weight != 60 || len(exam.Grades) != 0 {
		t.Errorf("Exam = %+v, want weight 60 and no grades", exam)
	}

	for _, want := range []string{
		"Finished setting up course: Algorithms",
		"Grade Achieved So Far: 85.00% (B)",
		"Final Grade (if remaining sections score 0): 34.00% (F)",
		"Exiting program. Your data has been saved.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func Test_commandLine_mainMenu_invalidInput(t *testing.T) {
	script := strings.Join([]string{
		"9",   // not a menu option
		"1",   // select a course: none exist yet
		"2",   // add a new course
		"",    // empty name is rejected
		"2",   // try again
		"Math",
		"HW",
		"abc", "50", // invalid weight, then a valid one
		"done",
		"4",
	}, "\n") + "\n"

	cli, out := setup(t, script)
	if err := cli.run([]string{"gradebook"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}

	for _, want := range []string{
		"Invalid option. Please choose 1, 2, 3, or 4.",
		"No courses available. Please add a course first.",
		"Invalid course name:",
		"Invalid weight, please enter a numeric value.",
		"Finished setting up course: Math",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q in:\n%s", want, out.String())
		}
	}
	if _, err := cli.svc.GetByName("Math"); err != nil {
		t.Errorf("course was not created: %v", err)
	}
}

func Test_commandLine_courseMenu_suggestion(t *testing.T) {
	script := strings.Join([]string{
		"1", "1", // select course #1
		"2",       // update a section's weight
		"Homwork", // misspelled
		"25",
		"4", // return
		"4", // quit
	}, "\n") + "\n"

	cli, out := setup(t, script)
	testutil.CreateCourse(t, cli.svc, "Algorithms", testutil.NewSectionWithGrades("Homework", 40))

	if err := cli.run([]string{"gradebook"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Section 'Homwork' does not exist in Algorithms.") {
		t.Error("missing not-found notice")
	}
	if !strings.Contains(out.String(), "Did you mean 'Homework'?") {
		t.Error("missing name suggestion")
	}

	// state unchanged
	sec, _ := cli.svc.Courses()[0].Section("Homework")
	if sec.Weight != 40 {
		t.Errorf("Weight = %v, want 40 (unchanged)", sec.Weight)
	}
}

func Test_commandLine_eof(t *testing.T) {
	// stdin exhausted mid-prompt must end the session cleanly
	cli, _ := setup(t, "2\n")
	if err := cli.run([]string{"gradebook"}); err != nil {
		t.Errorf("cli.run() error = %v, want clean exit on EOF", err)
	}
}
