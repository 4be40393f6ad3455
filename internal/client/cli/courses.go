package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
	"github.com/egiraffe/egiraffe-cli/internal/client/viewstate"
)

// Courses runs the debounced course search and renders the result list.
// A query matching nothing renders the no-results view, not an error.
func (a *App) Courses(ctx context.Context, query string) error {
	done := make(chan struct{}, 1)
	unsubscribe := a.search.Results.Subscribe(func() {
		switch a.search.Results.State() {
		case viewstate.StateError, viewstate.StateReady:
			select {
			case done <- struct{}{}:
			default:
			}
		case viewstate.StateLoading:
			printlnFn("Loading...")
		}
	})
	defer unsubscribe()

	a.search.SetQuery(query)

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := a.search.Results.Err(); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	courses, _ := a.search.Results.Value()
	if len(courses) == 0 {
		printlnFn("No courses found...")
		return nil
	}
	for _, course := range courses {
		printlnFn(fmt.Sprintf("%s  %s (%s)", course.ID, course.Name, course.HeldAt))
	}
	return nil
}

// Universities lists all known universities.
func (a *App) Universities(ctx context.Context) error {
	return runPage(ctx, a.client.GetUniversities, func(unis []models.University) {
		if len(unis) == 0 {
			printlnFn("No universities found")
			return
		}
		for _, uni := range unis {
			printlnFn(fmt.Sprintf("%s  %s (%s)", uni.ID, uni.FullName, uni.ShortName))
		}
	})
}

// NewCourse creates a course at a chosen university. Moderator affordance:
// hidden below AuthLevelModerator, enforced server-side either way.
func (a *App) NewCourse(ctx context.Context) error {
	if !a.hasRole(models.AuthLevelModerator) {
		printlnFn("Not authorized")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter course name", os.Stdout)
	if err != nil {
		return err
	}

	unis, err := a.client.GetUniversities(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for n, uni := range unis {
		printlnFn(fmt.Sprintf("%d: %s", n, uni.FullName))
	}
	choice, err := getSimpleText(a.reader, "Select university (number)", os.Stdout)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 0 || idx >= len(unis) {
		printlnFn("Invalid selection")
		return nil
	}

	course, err := a.client.CreateCourse(ctx, api.CreateCourseRequest{Name: name, HeldAt: unis[idx].ID})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created course " + course.ID)
	return nil
}

// NewProf registers an instructor uploads can reference.
func (a *App) NewProf(ctx context.Context) error {
	if !a.hasRole(models.AuthLevelModerator) {
		printlnFn("Not authorized")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter instructor name", os.Stdout)
	if err != nil {
		return err
	}
	prof, err := a.client.CreateProf(ctx, api.CreateProfRequest{Name: name})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created instructor " + prof.ID)
	return nil
}
