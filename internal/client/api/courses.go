package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

type CreateCourseRequest struct {
	Name   string `json:"name" validate:"required"`
	HeldAt string `json:"held_at" validate:"required"`
}

// GetCourses lists courses, optionally narrowed by a free-text query. The
// result is re-filtered client-side by case-insensitive substring match:
// with debounced queries a response may belong to an older query, so the
// redundancy keeps the rendered list consistent with what was typed.
func (c *HTTPClient) GetCourses(ctx context.Context, query string) ([]models.Course, error) {
	path := "/api/v1/get/courses"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	resp, err := put[struct {
		Courses []models.Course `json:"courses"`
	}](ctx, c, path, nil)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	courses := make([]models.Course, 0, len(resp.Courses))
	for _, course := range resp.Courses {
		if strings.Contains(strings.ToLower(course.Name), needle) {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

// CreateCourse is moderator-only; the client merely hides the affordance,
// the server enforces the role.
func (c *HTTPClient) CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := put[struct {
		Course models.Course `json:"course"`
	}](ctx, c, "/api/v1/course/create", req)
	if err != nil {
		return nil, err
	}
	return &resp.Course, nil
}
