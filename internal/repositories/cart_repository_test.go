package repositories

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

func TestCartRepositoryAdd(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	cartRepo := NewCartRepository(db)

	projectID, err := projectRepo.Create(sampleInput("saved"))
	require.NoError(t, err)

	id, err := cartRepo.Add(projectID)
	require.NoError(t, err)

	item, err := cartRepo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, projectID, item.ProjectID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCartRepositoryAddMissingProject(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewCartRepository(db)

	_, err := cartRepo.Add(42)
	assert.ErrorIs(t, err, models.ErrProjectNotFound)

	items, err := cartRepo.ListWithProjects()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepositoryListWithProjects(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	cartRepo := NewCartRepository(db)

	firstID, err := projectRepo.Create(sampleInput("first"))
	require.NoError(t, err)
	secondID, err := projectRepo.Create(sampleInput("second"))
	require.NoError(t, err)

	_, err = cartRepo.Add(firstID)
	require.NoError(t, err)
	_, err = cartRepo.Add(secondID)
	require.NoError(t, err)

	items, err := cartRepo.ListWithProjects()
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest first; joined fields mirror the project's stored values.
	assert.Equal(t, secondID, items[0].ProjectID)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "Description of second", items[0].Description)
	assert.Equal(t, "Design", items[0].Category)
	assert.Equal(t, "Jamie", items[0].Author)
	require.NotNil(t, items[0].ImageURL)
	assert.Equal(t, "https://example.com/second.png", *items[0].ImageURL)

	assert.Equal(t, firstID, items[1].ProjectID)
}

func TestCartRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	cartRepo := NewCartRepository(db)

	projectID, err := projectRepo.Create(sampleInput("transient"))
	require.NoError(t, err)
	id, err := cartRepo.Add(projectID)
	require.NoError(t, err)

	require.NoError(t, cartRepo.Delete(id))
	assert.ErrorIs(t, cartRepo.Delete(id), sql.ErrNoRows)
}

func TestCartRowsCascadeOnProjectDelete(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	cartRepo := NewCartRepository(db)

	projectID, err := projectRepo.Create(sampleInput("doomed"))
	require.NoError(t, err)
	_, err = cartRepo.Add(projectID)
	require.NoError(t, err)

	require.NoError(t, projectRepo.Delete(projectID))

	items, err := cartRepo.ListWithProjects()
	require.NoError(t, err)
	assert.Empty(t, items)
}
