package client

import (
	"context"
	"strings"
	"sync"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

// Collection keys understood by the store. Invalidate accepts only these.
const (
	CollectionProjects = "projects"
	CollectionCart     = "cart"
)

// Store is an explicit client-side cache of the server collections.
// Reads return the cached copy until the collection is invalidated;
// mutations go to the server first and then invalidate the collections
// they touched, so the next read re-fetches. No optimistic updates.
type Store struct {
	client *Client

	mu       sync.RWMutex
	projects *ProjectList
	cart     []models.CartItemDetail
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Projects returns the cached project list, fetching it when absent.
// Callers get their own copy; mutating it leaves the cache untouched.
func (s *Store) Projects(ctx context.Context) (*ProjectList, error) {
	s.mu.RLock()
	cached := s.projects
	s.mu.RUnlock()
	if cached != nil {
		return copyProjectList(cached), nil
	}

	list, err := s.client.ListProjects(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.projects = list
	s.mu.Unlock()
	return copyProjectList(list), nil
}

// CartItems returns the cached cart collection, fetching it when absent.
// Callers get their own copy; mutating it leaves the cache untouched.
func (s *Store) CartItems(ctx context.Context) ([]models.CartItemDetail, error) {
	s.mu.RLock()
	cached := s.cart
	s.mu.RUnlock()
	if cached != nil {
		return copyCartItems(cached), nil
	}

	items, err := s.client.GetCartItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItemDetail{}
	}

	s.mu.Lock()
	s.cart = items
	s.mu.Unlock()
	return copyCartItems(items), nil
}

func copyProjectList(list *ProjectList) *ProjectList {
	return &ProjectList{
		Projects:   append([]models.Project(nil), list.Projects...),
		Pagination: list.Pagination,
	}
}

func copyCartItems(items []models.CartItemDetail) []models.CartItemDetail {
	out := make([]models.CartItemDetail, len(items))
	copy(out, items)
	return out
}

// Invalidate drops the cached copy of the named collections.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		switch key {
		case CollectionProjects:
			s.projects = nil
		case CollectionCart:
			s.cart = nil
		}
	}
}

// CreateProject creates a project and invalidates the project collection.
func (s *Store) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	project, err := s.client.CreateProject(ctx, input)
	if err != nil {
		return nil, err
	}
	s.Invalidate(CollectionProjects)
	return project, nil
}

// DeleteProject deletes a project. The cart is invalidated too because
// the server cascades the delete to saved cart rows.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	if err := s.client.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.Invalidate(CollectionProjects, CollectionCart)
	return nil
}

// AddToCart saves a project and invalidates the cart collection.
func (s *Store) AddToCart(ctx context.Context, projectID int64) (*models.CartItem, error) {
	item, err := s.client.AddToCart(ctx, projectID)
	if err != nil {
		return nil, err
	}
	s.Invalidate(CollectionCart)
	return item, nil
}

// RemoveFromCart removes a cart row and invalidates the cart collection.
func (s *Store) RemoveFromCart(ctx context.Context, cartItemID int64) error {
	if err := s.client.RemoveFromCart(ctx, cartItemID); err != nil {
		return err
	}
	s.Invalidate(CollectionCart)
	return nil
}

// FilterProjects returns the projects whose title, description, category
// or author contains the query, case-insensitively. An empty query
// returns the input unchanged.
func FilterProjects(projects []models.Project, query string) []models.Project {
	if query == "" {
		return projects
	}

	q := strings.ToLower(query)
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Author), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterCartItems applies the same substring match to saved cart rows.
func FilterCartItems(items []models.CartItemDetail, query string) []models.CartItemDetail {
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	filtered := make([]models.CartItemDetail, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Category), q) ||
			strings.Contains(strings.ToLower(item.Author), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
