package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

func TestAddToCartAndList(t *testing.T) {
	router := setupTestRouter(t)
	project := createProject(t, router, "saved")

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": project.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decodeBody[models.CartItem](t, w)
	assert.Equal(t, project.ID, item.ProjectID)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody[[]models.CartItemDetail](t, w)
	require.Len(t, items, 1)

	// Joined fields mirror the project's current stored values.
	assert.Equal(t, project.Title, items[0].Title)
	assert.Equal(t, project.Category, items[0].Category)
	assert.Equal(t, project.Author, items[0].Author)
	require.NotNil(t, items[0].ImageURL)
	assert.Equal(t, *project.ImageURL, *items[0].ImageURL)
}

func TestAddToCartMissingProjectIs404(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": 42})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", decodeBody[map[string]string](t, w)["error"])

	// No row was inserted.
	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]models.CartItemDetail](t, w))
}

func TestAddToCartValidation(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string][]models.ValidationError](t, w)
	require.Len(t, body["error"], 1)
	assert.Equal(t, "project_id", body["error"][0].Field)
}

func TestCartListOrderedNewestFirst(t *testing.T) {
	router := setupTestRouter(t)
	first := createProject(t, router, "first")
	second := createProject(t, router, "second")

	for _, id := range []int64{first.ID, second.ID} {
		w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": id})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody[[]models.CartItemDetail](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ProjectID)
	assert.Equal(t, first.ID, items[1].ProjectID)
}

func TestRemoveFromCartIdempotence(t *testing.T) {
	router := setupTestRouter(t)
	project := createProject(t, router, "transient")

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": project.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeBody[models.CartItem](t, w)

	path := fmt.Sprintf("/cart/%d", item.ID)
	w = doJSON(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item removed from cart successfully", decodeBody[map[string]string](t, w)["message"])

	for i := 0; i < 2; i++ {
		w = doJSON(t, router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestDeleteProjectCascadesToCart(t *testing.T) {
	router := setupTestRouter(t)
	project := createProject(t, router, "doomed")

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]int64{"project_id": project.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]models.CartItemDetail](t, w))
}
