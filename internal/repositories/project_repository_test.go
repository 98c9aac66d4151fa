package repositories

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bariskaplan/portfolio-hub/internal/models"
	"github.com/bariskaplan/portfolio-hub/pkg/database"
)

// setupTestDB opens an in-memory database with the schema applied.
// A single connection keeps every statement on the same memory store.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=ON")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, "../../migrations"))
	return db
}

func sampleInput(title string) *models.ProjectInput {
	return &models.ProjectInput{
		Title:       title,
		Description: "Description of " + title,
		Category:    "Design",
		Author:      "Jamie",
		ImageURL:    "https://example.com/" + title + ".png",
	}
}

func TestProjectRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(sampleInput("poster"))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	project, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "poster", project.Title)
	assert.Equal(t, "Description of poster", project.Description)
	assert.Equal(t, "Design", project.Category)
	assert.Equal(t, "Jamie", project.Author)
	require.NotNil(t, project.ImageURL)
	assert.Equal(t, "https://example.com/poster.png", *project.ImageURL)
	assert.False(t, project.CreatedAt.IsZero())
	assert.False(t, project.UpdatedAt.IsZero())
}

func TestProjectRepositoryCreateWithoutImage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	input := sampleInput("plain")
	input.ImageURL = ""
	id, err := repo.Create(input)
	require.NoError(t, err)

	project, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, project.ImageURL)
}

func TestProjectRepositoryGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProjectRepositoryListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := repo.Create(sampleInput(fmt.Sprintf("project-%d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// Newest first: the second page of size one is the middle insert.
	page, err := repo.List(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	all, err := repo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestProjectRepositoryListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	projects, err := repo.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestProjectRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(sampleInput("before"))
	require.NoError(t, err)

	updated := &models.ProjectInput{
		Title:       "after",
		Description: "New description",
		Category:    "Art",
		Author:      "Robin",
	}
	require.NoError(t, repo.Update(id, updated))

	project, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "after", project.Title)
	assert.Equal(t, "Art", project.Category)
	assert.Nil(t, project.ImageURL)
}

func TestProjectRepositoryUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	err := repo.Update(42, sampleInput("ghost"))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProjectRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(sampleInput("short-lived"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))

	_, err = repo.GetByID(id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Deleting again reports not found, same as the first miss.
	assert.ErrorIs(t, repo.Delete(id), sql.ErrNoRows)
}
