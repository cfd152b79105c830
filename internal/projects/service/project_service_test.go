package service

import (
	"context"
	"testing"
	"time"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
	"github.com/ishanperera/portfolio-backend/internal/projects/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()
	m := store.NewMemory()
	require.NoError(t, m.Seed(context.Background(), store.SeedProjects()))
	return New(m)
}

func validInput() domain.CreateProjectInput {
	return domain.CreateProjectInput{
		Title:        "CLI Tool",
		Description:  "A command line tool.",
		Image:        "https://example.com/cli.png",
		Technologies: domain.TechnologyList{"Go", "Cobra"},
		GithubURL:    "https://github.com/yourusername/cli-tool",
		LiveURL:      "https://cli-tool.example.com",
		Category:     "Backend",
	}
}

func TestList_CategoryFilter(t *testing.T) {
	svc := newSeededService(t)

	items, err := svc.List(context.Background(), domain.ListFilter{Category: "Frontend"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest createdAt first.
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "4", items[1].ID)
	for _, p := range items {
		assert.Equal(t, "Frontend", p.Category)
	}
}

func TestList_CategoryAll(t *testing.T) {
	svc := newSeededService(t)

	items, err := svc.List(context.Background(), domain.ListFilter{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestList_FeaturedOnly(t *testing.T) {
	svc := newSeededService(t)

	items, err := svc.List(context.Background(), domain.ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, p := range items {
		assert.True(t, p.Featured)
	}
}

func TestList_Limit(t *testing.T) {
	svc := newSeededService(t)

	items, err := svc.List(context.Background(), domain.ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// The two newest from the full createdAt-descending ordering.
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
}

func TestList_SortedNewestFirst(t *testing.T) {
	svc := newSeededService(t)

	items, err := svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 6)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
}

func TestGet(t *testing.T) {
	svc := newSeededService(t)

	p, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "REST API Server", p.Title)

	_, err = svc.Get(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCreate_AssignsNextID(t *testing.T) {
	svc := newSeededService(t)

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "7", p.ID)
	assert.False(t, p.Featured)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.UpdatedAt)

	got, err := svc.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "CLI Tool", got.Title)
	assert.Equal(t, []string{"Go", "Cobra"}, got.Technologies)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newSeededService(t)

	in := validInput()
	in.Title = ""
	in.Image = "   "
	in.Technologies = nil

	_, err := svc.Create(context.Background(), in)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"title", "image", "technologies"}, ve.Missing)

	// Collection unchanged.
	items, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestCreate_IDNotReusedAfterDelete(t *testing.T) {
	svc := newSeededService(t)

	_, err := svc.Delete(context.Background(), "3")
	require.NoError(t, err)

	// The counter is monotonic, never derived from the current count, so
	// a fresh create cannot collide with a surviving id.
	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "7", p.ID)

	p2, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "8", p2.ID)
}

func TestUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	svc := newSeededService(t)

	before, err := svc.Get(context.Background(), "2")
	require.NoError(t, err)

	title := "Renamed App"
	updated, err := svc.Update(context.Background(), "2", domain.UpdateProjectInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed App", updated.Title)
	require.NotNil(t, updated.UpdatedAt)

	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Image, updated.Image)
	assert.Equal(t, before.Technologies, updated.Technologies)
	assert.Equal(t, before.GithubURL, updated.GithubURL)
	assert.Equal(t, before.LiveURL, updated.LiveURL)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Featured, updated.Featured)
	assert.True(t, before.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdate_ExplicitZeroValuesApply(t *testing.T) {
	svc := newSeededService(t)

	// Presence-based merge: an explicit empty string overwrites, and
	// featured accepts an explicit false.
	empty := ""
	featured := false
	updated, err := svc.Update(context.Background(), "1", domain.UpdateProjectInput{
		Description: &empty,
		Featured:    &featured,
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
	assert.False(t, updated.Featured)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newSeededService(t)

	title := "X"
	_, err := svc.Update(context.Background(), "99", domain.UpdateProjectInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestDelete(t *testing.T) {
	svc := newSeededService(t)

	removed, err := svc.Delete(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Weather Dashboard", removed.Title)

	_, err = svc.Get(context.Background(), "4")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	_, err = svc.Delete(context.Background(), "4")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestToggleFeatured_TwiceRestoresFlag(t *testing.T) {
	svc := newSeededService(t)

	before, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	require.False(t, before.Featured)

	first, err := svc.ToggleFeatured(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, first.Featured)
	require.NotNil(t, first.UpdatedAt)

	time.Sleep(5 * time.Millisecond)

	second, err := svc.ToggleFeatured(context.Background(), "3")
	require.NoError(t, err)
	assert.False(t, second.Featured)
	require.NotNil(t, second.UpdatedAt)

	// The flag is back, but each call bumps updatedAt.
	assert.True(t, second.UpdatedAt.After(*first.UpdatedAt))
}

func TestStats(t *testing.T) {
	svc := newSeededService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalProjects)
	assert.Equal(t, 3, stats.FeaturedProjects)
	assert.Equal(t, map[string]int{
		"Full Stack": 2,
		"Frontend":   2,
		"Backend":    2,
	}, stats.Categories)

	require.Len(t, stats.RecentProjects, 5)
	assert.Equal(t, "1", stats.RecentProjects[0].ID)
	assert.Equal(t, "2", stats.RecentProjects[1].ID)
	assert.Equal(t, "3", stats.RecentProjects[2].ID)
	assert.Equal(t, "4", stats.RecentProjects[3].ID)
	assert.Equal(t, "5", stats.RecentProjects[4].ID)
}

func TestPublicStats(t *testing.T) {
	svc := newSeededService(t)

	stats, err := svc.PublicStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Featured)
	assert.Equal(t, 2, stats.Categories["Backend"])
	assert.Greater(t, stats.Technologies, 0)
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	svc := newSeededService(t)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Stack", "Frontend", "Backend"}, categories)
}
