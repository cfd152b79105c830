package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
	"github.com/ishanperera/portfolio-backend/internal/projects/store"
)

// Service implements the project collection operations over an injected
// store. Mutations that read-then-write (update, toggle) are serialized
// with a mutex so they cannot interleave.
type Service struct {
	store store.Store
	mu    sync.Mutex
	now   func() time.Time
}

func New(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// All returns the collection in insertion order (admin view).
func (s *Service) All(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// List returns matching projects sorted by creation date, newest first.
// Category "All" (or empty) matches everything; limit truncates the
// sorted result.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Project, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Project, 0, len(items))
	for _, p := range items {
		if filter.Category != "" && filter.Category != "All" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if filter.Limit > 0 && filter.Limit < len(filtered) {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.store.Get(ctx, id)
}

// Create validates the input and appends a new record. The id comes from
// the store's counter; featured starts false.
func (s *Service) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	require("title", in.Title)
	require("description", in.Description)
	require("image", in.Image)
	if len(in.Technologies) == 0 {
		missing = append(missing, "technologies")
	}
	require("githubUrl", in.GithubURL)
	require("liveUrl", in.LiveURL)
	require("category", in.Category)

	if len(missing) > 0 {
		return domain.Project{}, &domain.ValidationError{Missing: missing}
	}

	p := domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Technologies: []string(in.Technologies),
		GithubURL:    in.GithubURL,
		LiveURL:      in.LiveURL,
		Category:     in.Category,
		Featured:     false,
		CreatedAt:    s.now().UTC(),
	}
	return s.store.Insert(ctx, p)
}

// Update merges the provided fields over the existing record. A field is
// applied whenever the payload defines it, including explicit zero values.
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateProjectInput) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Technologies != nil {
		p.Technologies = []string(*in.Technologies)
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	t := s.now().UTC()
	p.UpdatedAt = &t

	if err := s.store.Replace(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Delete removes the record and returns it.
func (s *Service) Delete(ctx context.Context, id string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, id)
}

// ToggleFeatured flips the featured flag and bumps updatedAt.
func (s *Service) ToggleFeatured(ctx context.Context, id string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}

	p.Featured = !p.Featured
	t := s.now().UTC()
	p.UpdatedAt = &t

	if err := s.store.Replace(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Stats builds the admin dashboard aggregate: totals, per-category counts
// and the five most recently created records.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.Stats{
		TotalProjects: len(items),
		Categories:    make(map[string]int),
	}
	for _, p := range items {
		if p.Featured {
			stats.FeaturedProjects++
		}
		stats.Categories[p.Category]++
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	for i := 0; i < len(items) && i < 5; i++ {
		stats.RecentProjects = append(stats.RecentProjects, domain.ProjectSummary{
			ID:        items[i].ID,
			Title:     items[i].Title,
			Category:  items[i].Category,
			CreatedAt: items[i].CreatedAt,
		})
	}
	return stats, nil
}

// PublicStats is the unauthenticated aggregate: totals plus the number of
// distinct technologies across the collection.
func (s *Service) PublicStats(ctx context.Context) (domain.PublicStats, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return domain.PublicStats{}, err
	}

	stats := domain.PublicStats{
		Total:      len(items),
		Categories: make(map[string]int),
	}
	techs := make(map[string]struct{})
	for _, p := range items {
		if p.Featured {
			stats.Featured++
		}
		stats.Categories[p.Category]++
		for _, t := range p.Technologies {
			techs[t] = struct{}{}
		}
	}
	stats.Technologies = len(techs)
	return stats, nil
}

// Categories returns the distinct category values in first-seen order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}
