package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

func newSidebarFixture(t *testing.T) (*SidebarService, *mockSidebarRepo, *mockCategoryRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sidebars := &mockSidebarRepo{}
	categories := &mockCategoryRepo{}
	svc := NewSidebarService(sidebars, categories, cache.NewRedisCache(client, "test", "sidebar"), 5*time.Minute)
	return svc, sidebars, categories, mr
}

func venues(id uuid.UUID) *models.Category {
	c := &models.Category{
		Name:          "Venues",
		CategoryTypes: []string{"Banquet", "Lawn"},
		Properties: models.PropertyDefinitions{
			{Name: "Capacity", Type: models.PropertyTypeText},
			{Name: "AC", Type: models.PropertyTypeBoolean},
		},
	}
	c.ID = id
	return c
}

func TestSidebarUpsertNormalizesAndReportsOrphans(t *testing.T) {
	svc, sidebars, categories, mr := newSidebarFixture(t)
	ctx := context.Background()
	id := uuid.New()
	mr.Set("test:"+sidebarCacheKey(id), `{"categoryName":"stale"}`)

	var saved *models.SidebarConfig
	sidebars.On("Upsert", ctx, mock.AnythingOfType("*models.SidebarConfig")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.SidebarConfig) }).
		Return(nil)
	categories.On("FindByID", ctx, id).Return(venues(id), nil)

	res, err := svc.Upsert(ctx, id, &SaveSidebarRequest{
		PropertyValues: map[string][]string{
			"Capacity": {"100 - 500", "500 - Above", "100 - 500"},
			"Parking":  {"Yes"},
		},
		DisplayTypes: map[string]string{"Capacity": "checkbox", "Decor": "button"},
		Locations:    []string{"Pune", "Mumbai", "Pune"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"100 - 500", "500 - Above"}, saved.PropertyValues["Capacity"])
	assert.Equal(t, []string{"Pune", "Mumbai"}, []string(saved.Locations))
	assert.Equal(t, []string{"Decor", "Parking"}, res.OrphanedKeys)
	assert.Equal(t, "Venues", res.Sidebar.CategoryName)
	assert.Equal(t, []string{"Banquet", "Lawn"}, res.Sidebar.CategoryTypes)
	assert.False(t, mr.Exists("test:"+sidebarCacheKey(id)))
}

func TestSidebarUpsertWithoutCategoryStillSaves(t *testing.T) {
	svc, sidebars, categories, _ := newSidebarFixture(t)
	ctx := context.Background()
	id := uuid.New()

	sidebars.On("Upsert", ctx, mock.Anything).Return(nil)
	categories.On("FindByID", ctx, id).Return(nil, repository.ErrNotFound)

	res, err := svc.Upsert(ctx, id, &SaveSidebarRequest{})
	require.NoError(t, err)
	assert.Equal(t, "", res.Sidebar.CategoryName)
	assert.Equal(t, []string{}, res.Sidebar.CategoryTypes)
	assert.Equal(t, models.StringSets{}, res.Sidebar.PropertyValues)
	assert.Empty(t, res.OrphanedKeys)
}

func TestSidebarGetByCategoryCachesView(t *testing.T) {
	svc, sidebars, categories, _ := newSidebarFixture(t)
	ctx := context.Background()
	id := uuid.New()

	cfg := &models.SidebarConfig{
		CategoryID:     id,
		PropertyValues: models.StringSets{"AC": {"true"}},
		DisplayTypes:   models.StringMap{"AC": "checkbox"},
		Locations:      []string{"Pune"},
	}
	sidebars.On("FindByCategory", ctx, id).Return(cfg, nil).Once()
	categories.On("FindByID", ctx, id).Return(venues(id), nil).Once()

	first, err := svc.GetByCategory(ctx, id)
	require.NoError(t, err)
	second, err := svc.GetByCategory(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Venues", first.CategoryName)
	assert.Equal(t, first.PropertyValues, second.PropertyValues)
	assert.Equal(t, first.CategoryTypes, second.CategoryTypes)
	sidebars.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestSidebarGetByCategoryNotFound(t *testing.T) {
	svc, sidebars, _, _ := newSidebarFixture(t)
	ctx := context.Background()
	id := uuid.New()
	sidebars.On("FindByCategory", ctx, id).Return(nil, repository.ErrNotFound)

	_, err := svc.GetByCategory(ctx, id)
	assert.ErrorIs(t, err, ErrSidebarNotFound)
}

func TestSidebarGetAllAnnotatesCategories(t *testing.T) {
	svc, sidebars, categories, _ := newSidebarFixture(t)
	ctx := context.Background()
	known, gone := uuid.New(), uuid.New()

	sidebars.On("List", ctx).Return([]models.SidebarConfig{{CategoryID: known}, {CategoryID: gone}}, nil)
	categories.On("FindByIDs", ctx, []uuid.UUID{known, gone}).
		Return(map[uuid.UUID]models.Category{known: *venues(known)}, nil)

	views, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Venues", views[0].CategoryName)
	assert.Equal(t, "", views[1].CategoryName)
	assert.Equal(t, []string{}, views[1].CategoryTypes)
}

func TestSidebarDelete(t *testing.T) {
	svc, sidebars, _, mr := newSidebarFixture(t)
	ctx := context.Background()
	id, missing := uuid.New(), uuid.New()
	mr.Set("test:"+sidebarCacheKey(id), "{}")

	sidebars.On("DeleteByCategory", ctx, id).Return(nil)
	sidebars.On("DeleteByCategory", ctx, missing).Return(repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	assert.False(t, mr.Exists("test:"+sidebarCacheKey(id)))
	assert.ErrorIs(t, svc.Delete(ctx, missing), ErrSidebarNotFound)
}
