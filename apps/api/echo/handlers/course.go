package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/masonbrown9/gradebook/core/course"
)

type (
	sectionInfo struct {
		Name    string    `json:"name"`
		Weight  float64   `json:"weight"`
		Grades  []float64 `json:"grades"`
		Average float64   `json:"average"`
	}

	courseSummary struct {
		Num          int      `json:"num"` // position in the listing, 1-based
		Name         string   `json:"name"`
		CurrentGrade *float64 `json:"current_grade"` // null until a grade is recorded
		OverallGrade float64  `json:"overall_grade"`
	}

	courseDetail struct {
		Name          string        `json:"name"`
		Sections      []sectionInfo `json:"sections"`
		CurrentGrade  *float64      `json:"current_grade"`
		CurrentLetter *string       `json:"current_letter"`
		OverallGrade  float64       `json:"overall_grade"`
		OverallLetter string        `json:"overall_letter"`
	}
)

type courseApi struct {
	service *course.Service
}

func RegisterCourseAPI(g *echo.Group, svc *course.Service) {
	api := courseApi{service: svc}

	cg := g.Group("/courses")
	cg.GET("", api.courseQuery)
	cg.POST("", api.courseCreate)

	// detail endpoints; courses address by listing position, like the shell
	dg := cg.Group("/:num")
	dg.GET("", api.courseRetrieve)
	dg.POST("/sections", api.sectionCreate)
	dg.PUT("/sections/:name", api.sectionUpdateWeight)
	dg.POST("/sections/:name/grades", api.gradeCreate)

	g.GET("/snapshot", api.snapshot)
}

// Handlers

func (api *courseApi) courseQuery(ctx echo.Context) error {
	courses := api.service.Courses()
	summaries := make([]courseSummary, 0, len(courses))
	for i, c := range courses {
		summaries = append(summaries, newCourseSummary(i+1, c))
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *courseApi) courseCreate(ctx echo.Context) error {
	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := api.service.CheckNameUniqueness(data.Name); err != nil {
		return err
	}

	c := course.New(data.Name)
	if err := api.service.AddCourse(ctx.Request().Context(), c); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newCourseDetail(c))
}

func (api *courseApi) courseRetrieve(ctx echo.Context) error {
	c, err := api.contextCourse(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newCourseDetail(c))
}

func (api *courseApi) sectionCreate(ctx echo.Context) error {
	c, err := api.contextCourse(ctx)
	if err != nil {
		return err
	}

	data := new(course.NewSection)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	updated, err := api.service.AddSection(ctx.Request().Context(), c.Name, data.Name, data.Weight)
	if err != nil {
		return err
	}
	sec, _ := c.Section(data.Name)
	code := http.StatusCreated
	if updated { // weight replaced in place, grades kept
		code = http.StatusOK
	}
	return ctx.JSON(code, newSectionInfo(sec))
}

func (api *courseApi) sectionUpdateWeight(ctx echo.Context) error {
	c, err := api.contextCourse(ctx)
	if err != nil {
		return err
	}

	data := new(course.SectionWeight)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	name := ctx.Param("name")
	if err := api.service.UpdateSectionWeight(ctx.Request().Context(), c.Name, name, data.Weight); err != nil {
		return err
	}
	sec, _ := c.Section(name)
	return ctx.JSON(http.StatusOK, newSectionInfo(sec))
}

func (api *courseApi) gradeCreate(ctx echo.Context) error {
	c, err := api.contextCourse(ctx)
	if err != nil {
		return err
	}

	data := new(course.NewGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	name := ctx.Param("name")
	if err := api.service.AddAssignmentGrade(ctx.Request().Context(), c.Name, name, data.Grade); err != nil {
		return err
	}
	sec, _ := c.Section(name)
	return ctx.JSON(http.StatusCreated, newSectionInfo(sec))
}

func (api *courseApi) snapshot(ctx echo.Context) error {
	snapshot, err := api.service.Snapshot()
	if err != nil {
		return err
	}
	return ctx.String(http.StatusOK, snapshot)
}

// contextCourse resolves the :num path param (1-based listing position).
func (api *courseApi) contextCourse(ctx echo.Context) (*course.Course, error) {
	num, err := strconv.Atoi(ctx.Param("num"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "course number must be an integer")
	}
	return api.service.GetByIndex(num - 1)
}

func newSectionInfo(sec *course.Section) sectionInfo {
	return sectionInfo{
		Name:    sec.Name,
		Weight:  sec.Weight,
		Grades:  sec.Grades,
		Average: sec.Average(),
	}
}

func newCourseSummary(num int, c *course.Course) courseSummary {
	s := courseSummary{
		Num:          num,
		Name:         c.Name,
		OverallGrade: c.OverallGrade(),
	}
	if current, ok := c.CurrentGrade(); ok {
		s.CurrentGrade = &current
	}
	return s
}

func newCourseDetail(c *course.Course) courseDetail {
	secs := c.Sections()
	d := courseDetail{
		Name:          c.Name,
		Sections:      make([]sectionInfo, 0, len(secs)),
		OverallGrade:  c.OverallGrade(),
		OverallLetter: course.LetterGrade(c.OverallGrade()),
	}
	for _, sec := range secs {
		d.Sections = append(d.Sections, newSectionInfo(sec))
	}
	if current, ok := c.CurrentGrade(); ok {
		letter := course.LetterGrade(current)
		d.CurrentGrade = &current
		d.CurrentLetter = &letter
	}
	return d
}
