package course

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/masonbrown9/gradebook/core"
)

// input DTOs; names are validated, grade values deliberately are not.
type (
	NewCourse struct {
		Name string `json:"name" validate:"required,alphanum_"`
	}

	NewSection struct {
		Name   string  `json:"name" validate:"required,alphanum_"`
		Weight float64 `json:"weight" validate:"gte=0"`
	}

	NewGrade struct {
		Grade float64 `json:"grade"`
	}

	SectionWeight struct {
		Weight float64 `json:"weight" validate:"gte=0"`
	}
)

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

func (ns *NewSection) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	return core.Validate.Struct(ns)
}

func (sw *SectionWeight) Validate() error {
	return core.Validate.Struct(sw)
}

// minimum similarity ratio for a near-miss name suggestion
const suggestionMinRatio = .6

// ClosestName returns the candidate most similar to name, for "did you mean"
// suggestions after a not-found lookup. ok is false when nothing comes close.
func ClosestName(name string, candidates []string) (match string, ok bool) {
	var best float64
	lname := strings.ToLower(name)
	for _, cand := range candidates {
		ratio := difflib.NewMatcher(
			strings.Split(lname, ""),
			strings.Split(strings.ToLower(cand), ""),
		).QuickRatio()
		if ratio > best {
			best = ratio
			match = cand
		}
	}
	return match, best >= suggestionMinRatio
}
