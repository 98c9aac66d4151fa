package models

import "time"

type CartItem struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemDetail is a cart row joined with its project's display fields.
type CartItemDetail struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ImageURL    *string   `json:"image_url"`
}

// CartInput is the request body for adding a project to the cart.
type CartInput struct {
	ProjectID int64 `json:"project_id"`
}

func (c *CartInput) Validate() ValidationErrors {
	if c.ProjectID <= 0 {
		return ValidationErrors{
			{Field: "project_id", Message: "Project ID must be a positive integer"},
		}
	}
	return nil
}
