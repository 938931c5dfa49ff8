package integration

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author"
	authorRepo "catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/domains/book"
	bookRepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/domains/category"
	categoryRepo "catalog-backend/internal/domains/category/repository"
)

func TestAuthorDeleteCascadesBooks(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	authors := authorRepo.NewPostgresRepository(pool)
	books := bookRepo.NewPostgresRepository(pool, noopCache{})

	suffix := uniqueSuffix()
	a, err := authors.Create(ctx, &author.Author{
		Name: fmt.Sprintf("Cascade Author %s", suffix),
		Slug: fmt.Sprintf("cascade-author-%s", suffix),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM authors WHERE id = $1`, a.ID)
	})

	b, err := books.Create(ctx, &book.Book{
		Title:           fmt.Sprintf("Cascade Book %s", suffix),
		ISBN:            uniqueISBN(),
		Slug:            fmt.Sprintf("cascade-book-%s", suffix),
		PublicationDate: time.Date(1967, 5, 30, 0, 0, 0, 0, time.UTC),
		AuthorID:        a.ID,
	})
	require.NoError(t, err)

	require.NoError(t, authors.Delete(ctx, a.ID))

	// The author's books go with them
	_, err = books.GetByID(ctx, b.ID)
	assert.True(t, errors.Is(err, book.ErrBookNotFound))

	_, err = authors.GetByID(ctx, a.ID)
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
}

func TestCategoryDeleteLeavesBooksUncategorized(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	authors := authorRepo.NewPostgresRepository(pool)
	categories := categoryRepo.NewPostgresRepository(pool, noopCache{})
	books := bookRepo.NewPostgresRepository(pool, noopCache{})

	suffix := uniqueSuffix()
	a, err := authors.Create(ctx, &author.Author{
		Name: fmt.Sprintf("Orphan Author %s", suffix),
		Slug: fmt.Sprintf("orphan-author-%s", suffix),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM authors WHERE id = $1`, a.ID)
	})

	cat, err := categories.Create(ctx, &category.Category{
		Name: fmt.Sprintf("Orphan Genre %s", suffix),
		Slug: fmt.Sprintf("orphan-genre-%s", suffix),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, cat.ID)
	})

	b, err := books.Create(ctx, &book.Book{
		Title:           fmt.Sprintf("Orphan Book %s", suffix),
		ISBN:            uniqueISBN(),
		Slug:            fmt.Sprintf("orphan-book-%s", suffix),
		PublicationDate: time.Date(1985, 4, 5, 0, 0, 0, 0, time.UTC),
		AuthorID:        a.ID,
		CategoryID:      &cat.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, b.CategoryID)

	require.NoError(t, categories.Delete(ctx, cat.ID))

	// The book survives with category_id set to NULL
	after, err := books.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, after.CategoryID)
	assert.Nil(t, after.CategoryName)

	_, err = categories.GetBySlug(ctx, cat.Slug)
	assert.True(t, errors.Is(err, category.ErrCategoryNotFound))
}
