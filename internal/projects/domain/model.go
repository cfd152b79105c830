package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Project is a single portfolio entry. The json tags match the public API
// wire format (the `_id` key is kept for client compatibility).
type Project struct {
	ID           string     `json:"_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Technologies []string   `json:"technologies"`
	GithubURL    string     `json:"githubUrl"`
	LiveURL      string     `json:"liveUrl"`
	Category     string     `json:"category"`
	Featured     bool       `json:"featured"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers can't alias store-owned slices.
func (p Project) Clone() Project {
	cp := p
	cp.Technologies = append([]string(nil), p.Technologies...)
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}

// TechnologyList unmarshals from either a JSON array of strings or a
// single comma-separated string, trimming each segment in the string case.
type TechnologyList []string

func (t *TechnologyList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	*t = out
	return nil
}

// CreateProjectInput carries the fields for a new project. All fields are
// required; featured and timestamps are assigned by the service.
type CreateProjectInput struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	Technologies TechnologyList `json:"technologies"`
	GithubURL    string         `json:"githubUrl"`
	LiveURL      string         `json:"liveUrl"`
	Category     string         `json:"category"`
}

// UpdateProjectInput is a partial update. A field is applied only when the
// caller's payload defines the key (presence-based merge), so an explicit
// empty string or false does overwrite.
type UpdateProjectInput struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Image        *string         `json:"image"`
	Technologies *TechnologyList `json:"technologies"`
	GithubURL    *string         `json:"githubUrl"`
	LiveURL      *string         `json:"liveUrl"`
	Category     *string         `json:"category"`
	Featured     *bool           `json:"featured"`
}

// ListFilter narrows the public project listing.
type ListFilter struct {
	Category     string
	FeaturedOnly bool
	Limit        int
}

// ProjectSummary is the condensed form used in dashboard stats.
type ProjectSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalProjects    int              `json:"totalProjects"`
	FeaturedProjects int              `json:"featuredProjects"`
	Categories       map[string]int   `json:"categories"`
	RecentProjects   []ProjectSummary `json:"recentProjects"`
}

// PublicStats is the unauthenticated aggregate exposed on the public
// project surface.
type PublicStats struct {
	Total        int            `json:"total"`
	Categories   map[string]int `json:"categories"`
	Featured     int            `json:"featured"`
	Technologies int            `json:"technologies"`
}
