package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
)

// mainMenu runs the interactive course manager until the user quits or
// stdin is exhausted.
func (cli *commandLine) mainMenu() error {
	sc := bufio.NewScanner(cli.in)
	ctx := context.Background()

	for {
		fmt.Fprintln(cli.out, "\n=== Course Manager ===")
		names := cli.svc.ListCourses()
		if len(names) > 0 {
			fmt.Fprintln(cli.out, "Available courses:")
			for _, name := range names {
				fmt.Fprintf(cli.out, "• %s\n", name)
			}
		} else {
			fmt.Fprintln(cli.out, "No courses available yet.")
		}
		fmt.Fprintln(cli.out, "Options:")
		fmt.Fprintln(cli.out, "1. Select a course")
		fmt.Fprintln(cli.out, "2. Add a new course")
		fmt.Fprintln(cli.out, "3. Grades Snapshot")
		fmt.Fprintln(cli.out, "4. Quit")

		choice, ok := cli.readLine(sc, "Choose an option (1-4): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if len(names) == 0 {
				fmt.Fprintln(cli.out, "No courses available. Please add a course first.")
				continue
			}
			input, ok := cli.readLine(sc, "Enter the course number (position in the list): ")
			if !ok {
				return nil
			}
			selected, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintln(cli.out, "Invalid input. Please enter a valid course number.")
				continue
			}
			c, err := cli.svc.GetByIndex(selected - 1)
			if err != nil {
				fmt.Fprintln(cli.out, "Invalid course number selected.")
				continue
			}
			if ok := cli.courseMenu(ctx, sc, c); !ok {
				return nil
			}
		case "2":
			if ok := cli.addCourse(ctx, sc); !ok {
				return nil
			}
		case "3":
			if err := cli.snapshot(); err != nil {
				return err
			}
		case "4":
			fmt.Fprintln(cli.out, "Exiting program. Your data has been saved.")
			return nil
		default:
			fmt.Fprintln(cli.out, "Invalid option. Please choose 1, 2, 3, or 4.")
		}
	}
}

// addCourse prompts for a course name, runs section setup and persists.
// ok is false when stdin is exhausted.
func (cli *commandLine) addCourse(ctx context.Context, sc *bufio.Scanner) (ok bool) {
	name, ok := cli.readLine(sc, "Enter new course name: ")
	if !ok {
		return false
	}
	nc := course.NewCourse{Name: name}
	if err := nc.Validate(); err != nil {
		fmt.Fprintf(cli.out, "Invalid course name: %s\n", translateValidationErr(err))
		return true
	}
	if _, err := cli.svc.GetByName(nc.Name); err == nil {
		fmt.Fprintln(cli.out, "Course already exists.")
		return true
	}

	c := course.New(nc.Name)
	if ok := cli.setupCourse(sc, c); !ok {
		return false
	}
	if err := cli.svc.AddCourse(ctx, c); err != nil {
		fmt.Fprintf(cli.out, "Could not save course: %v\n", err)
	}
	return true
}

// setupCourse defines grading sections on a fresh course until "done".
func (cli *commandLine) setupCourse(sc *bufio.Scanner, c *course.Course) (ok bool) {
	fmt.Fprintf(cli.out, "\nDefine grading sections for course: %s\n", c.Name)
	for {
		name, ok := cli.readLine(sc, "Enter section name (or type 'done' to finish): ")
		if !ok {
			return false
		}
		if core.CleanString(name, true) == "done" {
			break
		}
		weight, ok := cli.readFloat(sc, fmt.Sprintf("Enter weight (in percent) for %s: ", name), "Invalid weight, please enter a numeric value.")
		if !ok {
			return false
		}
		ns := course.NewSection{Name: name, Weight: weight}
		if err := ns.Validate(); err != nil {
			fmt.Fprintf(cli.out, "Invalid section: %s\n", translateValidationErr(err))
			continue
		}
		if updated := c.AddSection(ns.Name, ns.Weight); updated {
			fmt.Fprintf(cli.out, "Section '%s' already exists in %s. Updating its weight to %g%%.\n", ns.Name, c.Name, ns.Weight)
		}
	}
	fmt.Fprintf(cli.out, "Finished setting up course: %s\n\n", c.Name)
	return true
}

// courseMenu operates on a selected course until the user returns.
// ok is false when stdin is exhausted.
func (cli *commandLine) courseMenu(ctx context.Context, sc *bufio.Scanner, c *course.Course) (ok bool) {
	for {
		fmt.Fprintf(cli.out, "\n%s\n", c.Status())
		fmt.Fprintln(cli.out, "Options for course:", c.Name)
		fmt.Fprintln(cli.out, "1. Add assignment grades to a section")
		fmt.Fprintln(cli.out, "2. Update a section's weight")
		fmt.Fprintln(cli.out, "3. Add a new section")
		fmt.Fprintln(cli.out, "4. Return to course selection")

		choice, ok := cli.readLine(sc, "Choose an option (1-4): ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if ok := cli.addGrades(ctx, sc, c); !ok {
				return false
			}
		case "2":
			if ok := cli.updateWeight(ctx, sc, c); !ok {
				return false
			}
		case "3":
			if ok := cli.addSection(ctx, sc, c); !ok {
				return false
			}
		case "4":
			return true
		default:
			fmt.Fprintln(cli.out, "Invalid option. Please choose a number between 1 and 4.")
		}
	}
}

func (cli *commandLine) addGrades(ctx context.Context, sc *bufio.Scanner, c *course.Course) (ok bool) {
	names := c.SectionNames()
	if len(names) == 0 {
		fmt.Fprintln(cli.out, "No sections available. Please add a section first.")
		return true
	}
	fmt.Fprintln(cli.out, "\nAvailable Sections:")
	for _, name := range names {
		fmt.Fprintf(cli.out, "• %s\n", name)
	}
	input, ok := cli.readLine(sc, "Select a section by number (position in the list): ")
	if !ok {
		return false
	}
	selected, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(cli.out, "Invalid input. Please enter a number corresponding to the section.")
		return true
	}
	if selected < 1 || selected > len(names) {
		fmt.Fprintln(cli.out, "Invalid section number selected.")
		return true
	}
	sectionName := names[selected-1]

	for {
		input, ok := cli.readLine(sc, fmt.Sprintf("Enter assignment grade for '%s' (or type 'done' to finish): ", sectionName))
		if !ok {
			return false
		}
		if core.CleanString(input, true) == "done" {
			return true
		}
		grade, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintln(cli.out, "Invalid grade. Please enter a numeric value.")
			continue
		}
		if err := cli.svc.AddAssignmentGrade(ctx, c.Name, sectionName, grade); err != nil {
			fmt.Fprintf(cli.out, "Could not record grade: %v\n", err)
			return true
		}
	}
}

func (cli *commandLine) updateWeight(ctx context.Context, sc *bufio.Scanner, c *course.Course) (ok bool) {
	name, ok := cli.readLine(sc, "Enter the section name to update its weight: ")
	if !ok {
		return false
	}
	weight, ok := cli.readFloat(sc, "Enter the new weight (in percent): ", "Invalid weight. Please enter a numeric value.")
	if !ok {
		return false
	}
	if err := cli.svc.UpdateSectionWeight(ctx, c.Name, name, weight); err != nil {
		if err == course.ErrSectionNotFound {
			cli.reportMissingSection(c, name)
			return true
		}
		fmt.Fprintf(cli.out, "Could not update weight: %v\n", err)
	}
	return true
}

func (cli *commandLine) addSection(ctx context.Context, sc *bufio.Scanner, c *course.Course) (ok bool) {
	name, ok := cli.readLine(sc, "Enter new section name: ")
	if !ok {
		return false
	}
	weight, ok := cli.readFloat(sc, fmt.Sprintf("Enter weight (in percent) for %s: ", name), "Invalid weight. Please enter a numeric value.")
	if !ok {
		return false
	}
	ns := course.NewSection{Name: name, Weight: weight}
	if err := ns.Validate(); err != nil {
		fmt.Fprintf(cli.out, "Invalid section: %s\n", translateValidationErr(err))
		return true
	}
	updated, err := cli.svc.AddSection(ctx, c.Name, ns.Name, ns.Weight)
	if err != nil {
		fmt.Fprintf(cli.out, "Could not add section: %v\n", err)
		return true
	}
	if updated {
		fmt.Fprintf(cli.out, "Section '%s' already exists in %s. Updating its weight to %g%%.\n", ns.Name, c.Name, ns.Weight)
	}
	return true
}

func (cli *commandLine) reportMissingSection(c *course.Course, name string) {
	fmt.Fprintf(cli.out, "Section '%s' does not exist in %s.\n", name, c.Name)
	if match, ok := course.ClosestName(name, c.SectionNames()); ok {
		fmt.Fprintf(cli.out, "Did you mean '%s'?\n", match)
	}
}

// readLine prompts and reads one trimmed line. ok is false on EOF.
func (cli *commandLine) readLine(sc *bufio.Scanner, prompt string) (line string, ok bool) {
	fmt.Fprint(cli.out, prompt)
	if !sc.Scan() {
		fmt.Fprintln(cli.out)
		return "", false
	}
	return core.CleanString(sc.Text()), true
}

// readFloat prompts until a numeric value is entered. ok is false on EOF.
func (cli *commandLine) readFloat(sc *bufio.Scanner, prompt, invalidMsg string) (val float64, ok bool) {
	for {
		input, ok := cli.readLine(sc, prompt)
		if !ok {
			return 0, false
		}
		val, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintln(cli.out, invalidMsg)
			continue
		}
		return val, true
	}
}
