package course

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var snapshotTmpl = template.Must(template.New("snapshot").Parse(
	`=== Grades Snapshot ===
{{- if not .}}
No courses available yet.
{{- end}}
{{- range .}}

Course: {{.Name}}
  Grade Achieved So Far: {{.Current}}
  Final Grade (if remaining sections score 0): {{.Overall}}
{{- end}}
`))

type snapshotEntry struct {
	Name    string
	Current string
	Overall string
}

// Snapshot renders a one-screen summary of every course's current and
// worst-case grades. Read-only.
func (svc *Service) Snapshot() (string, error) {
	entries := make([]snapshotEntry, 0, len(svc.names))
	for _, c := range svc.Courses() {
		entry := snapshotEntry{Name: c.Name}
		if current, ok := c.CurrentGrade(); ok {
			entry.Current = fmt.Sprintf("%.2f%% (%s)", current, LetterGrade(current))
		} else {
			entry.Current = "No grades entered yet."
		}
		overall := c.OverallGrade()
		entry.Overall = fmt.Sprintf("%.2f%% (%s)", overall, LetterGrade(overall))
		entries = append(entries, entry)
	}

	var b strings.Builder
	if err := snapshotTmpl.Execute(&b, entries); err != nil {
		return "", errors.Wrap(err, "rendering snapshot")
	}
	return b.String(), nil
}
