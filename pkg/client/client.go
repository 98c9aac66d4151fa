// Package client is a typed HTTP gateway for the portfolio-hub API.
// Every method wraps one endpoint and normalizes server failures into a
// single error carrying a human-readable message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ProjectList is the response of the project listing endpoint.
type ProjectList struct {
	Projects   []models.Project  `json:"projects"`
	Pagination models.Pagination `json:"pagination"`
}

// ListProjects fetches one page of projects. Zero page/limit values are
// omitted and fall back to the server defaults.
func (c *Client) ListProjects(ctx context.Context, page, limit int) (*ProjectList, error) {
	endpoint := c.baseURL + "/projects"
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var list ProjectList
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &list, "Error loading projects. Please try again later."); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	endpoint := fmt.Sprintf("%s/projects/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &project, "Error loading project. Please try again later."); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project and returns the stored row.
func (c *Client) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/projects", input, &project, "Error creating project. Please try again later."); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces all editable fields of a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, input models.ProjectInput) (*models.Project, error) {
	var project models.Project
	endpoint := fmt.Sprintf("%s/projects/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, endpoint, input, &project, "Error updating project. Please try again later."); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project by id.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s/projects/%d", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, "Error deleting project. Please try again later.")
}

// GetCartItems fetches all cart rows with their project details.
func (c *Client) GetCartItems(ctx context.Context) ([]models.CartItemDetail, error) {
	var items []models.CartItemDetail
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/cart", nil, &items, "Error loading cart items. Please try again later."); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart saves a project to the cart.
func (c *Client) AddToCart(ctx context.Context, projectID int64) (*models.CartItem, error) {
	var item models.CartItem
	body := models.CartInput{ProjectID: projectID}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/cart", body, &item, "Error adding to cart. Please try again later."); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart removes a cart row by id.
func (c *Client) RemoveFromCart(ctx context.Context, cartItemID int64) error {
	endpoint := fmt.Sprintf("%s/cart/%d", c.baseURL, cartItemID)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, "Error removing from cart. Please try again later.")
}

// do performs one request. Non-2xx responses are turned into an error
// whose message comes from the server's error body when it can be
// decoded, falling back to the per-operation message otherwise.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.New(fallback)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.New(fallback)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.New(fallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(extractErrorMessage(resp.Body, fallback))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.New(fallback)
		}
	}
	return nil
}

// extractErrorMessage decodes {"error": ...} bodies. The error value is
// either a plain string or a list of field errors, whose messages are
// joined with ", ".
func extractErrorMessage(body io.Reader, fallback string) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil || len(envelope.Error) == 0 {
		return fallback
	}

	var message string
	if err := json.Unmarshal(envelope.Error, &message); err == nil && message != "" {
		return message
	}

	var fieldErrors []models.ValidationError
	if err := json.Unmarshal(envelope.Error, &fieldErrors); err == nil && len(fieldErrors) > 0 {
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, fe.Message)
		}
		return strings.Join(messages, ", ")
	}

	return fallback
}
