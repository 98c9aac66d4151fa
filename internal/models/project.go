package models

import (
	"net/url"
	"strings"
	"time"
)

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInput is the request body for creating or updating a project.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	ImageURL    string `json:"image_url"`
}

// Validate trims all fields and returns every violation at once.
// An empty image_url is treated as absent.
func (p *ProjectInput) Validate() ValidationErrors {
	var errs ValidationErrors

	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.Author = strings.TrimSpace(p.Author)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	if p.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "Title is required"})
	}
	if p.Description == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "Description is required"})
	}
	if p.Category == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "Category is required"})
	}
	if p.Author == "" {
		errs = append(errs, ValidationError{Field: "author", Message: "Author is required"})
	}
	if p.ImageURL != "" && !isValidURL(p.ImageURL) {
		errs = append(errs, ValidationError{Field: "image_url", Message: "Image URL must be a valid URL"})
	}

	return errs
}

// NormalizedImageURL returns nil when the image URL is absent.
func (p *ProjectInput) NormalizedImageURL() *string {
	if p.ImageURL == "" {
		return nil
	}
	u := p.ImageURL
	return &u
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
