package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestSidebarUpsertReplacesOnCategoryConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSidebarRepo(db)
	categoryID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sidebar_configs" .* ON CONFLICT \("category_id"\) DO UPDATE SET "property_values"="excluded"."property_values","display_types"="excluded"."display_types","locations"="excluded"."locations","updated_at"="excluded"."updated_at" RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	err := repo.Upsert(context.Background(), &models.SidebarConfig{
		CategoryID:     categoryID,
		PropertyValues: models.StringSets{"Capacity": {"100 - 500"}},
		DisplayTypes:   models.StringMap{"Capacity": "checkbox"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSidebarDeleteByCategoryNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSidebarRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sidebar_configs" WHERE category_id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteByCategory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSidebarDeleteByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSidebarRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sidebar_configs"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByCategory(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryFindByIDMapsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" WHERE id = $1 AND "categories"."deleted_at" IS NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateMapsDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories"`)).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Category{Name: "Venues"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "categories" SET "deleted_at"=`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryListTopDefaultsToNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at desc LIMIT $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.NewString(), "Venues"))

	list, err := repo.ListTop(context.Background(), "sideways", 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Venues", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewSummariesGrouped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, AVG(rating) AS average_rating, COUNT(*) AS total_reviews FROM "reviews" WHERE product_id IN ($1,$2) AND "reviews"."deleted_at" IS NULL GROUP BY "product_id"`)).
		WithArgs(a, b).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "average_rating", "total_reviews"}).
			AddRow(a.String(), 4.333333, 3))

	got, err := repo.Summaries(context.Background(), []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Contains(t, got, a)
	assert.Equal(t, 4.3, got[a].AverageRating)
	assert.Equal(t, int64(3), got[a].TotalReviews)
	assert.NotContains(t, got, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewSummariesEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	got, err := NewReviewRepo(db).Summaries(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListFiltersAndPages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepo(db)
	categoryID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products" WHERE category_id = $1 AND (name ILIKE $2 OR description ILIKE $3)`)).
		WithArgs(categoryID, "%hall%", "%hall%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY selling_price asc LIMIT $4 OFFSET $5`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uuid.NewString(), "Grand Hall"))

	list, total, err := repo.List(context.Background(), utils.PaginationParams{
		Page: 2, Limit: 20, Sort: "selling_price", Order: "asc", Search: "hall", CategoryID: categoryID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnquiryAppendReplyNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEnquiryRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.AppendReply(context.Background(), uuid.New(), models.EnquiryReply{Message: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogListPublishedNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE published = \$1 .*ORDER BY published_date desc nulls last,created_at desc`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "tags", "published"}).
			AddRow(uuid.NewString(), "Monsoon weddings", "{weddings,monsoon}", true))

	list, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Monsoon weddings", list[0].Title)
	assert.Equal(t, []string{"weddings", "monsoon"}, []string(list[0].Tags))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "blogs" SET "deleted_at"=`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
