package cli

import (
	"context"
	"time"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
	"github.com/egiraffe/egiraffe-cli/internal/client/viewstate"
)

// CourseSearch is the course page's binding: a query signal feeding a
// debounced course fetch. Rapid query changes coalesce into one request
// after the quiet period; results of superseded fetches are dropped by the
// resource's last-started-wins rule.
type CourseSearch struct {
	Query   *viewstate.Signal[string]
	Results *viewstate.Resource[[]models.Course]

	debounce *viewstate.Debouncer
}

func NewCourseSearch(client api.Client, delay time.Duration) *CourseSearch {
	cs := &CourseSearch{
		Query:    viewstate.NewSignal(""),
		debounce: viewstate.NewDebouncer(delay),
	}
	cs.Results = viewstate.NewResource(func(ctx context.Context) ([]models.Course, error) {
		return client.GetCourses(ctx, cs.Query.Get())
	})
	cs.Query.Subscribe(func(string) {
		cs.debounce.Do(func() {
			cs.Results.Fetch(context.Background())
		})
	})
	return cs
}

// SetQuery records a keystroke-level query change and schedules the
// debounced fetch.
func (cs *CourseSearch) SetQuery(query string) {
	cs.Query.Set(query)
}
