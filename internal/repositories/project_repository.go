package repositories

import (
	"database/sql"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create inserts a new project and returns the generated row id.
func (r *ProjectRepository) Create(input *models.ProjectInput) (int64, error) {
	query := `
		INSERT INTO projects (title, description, category, author, image_url)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		input.Title,
		input.Description,
		input.Category,
		input.Author,
		input.NormalizedImageURL(),
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id int64) (*models.Project, error) {
	query := `
		SELECT id, title, description, category, author, image_url, created_at, updated_at
		FROM projects
		WHERE id = ?
	`

	project := &models.Project{}
	err := r.db.QueryRow(query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		&project.Author,
		&project.ImageURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return project, nil
}

// List retrieves a page of projects ordered by creation time, newest first.
// Limit and offset are bound parameters, never spliced into the SQL text.
func (r *ProjectRepository) List(limit, offset int) ([]*models.Project, error) {
	query := `
		SELECT id, title, description, category, author, image_url, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Category,
			&project.Author,
			&project.ImageURL,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Count returns the total number of projects.
func (r *ProjectRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&total)
	return total, err
}

// Update replaces all editable fields of a project.
func (r *ProjectRepository) Update(id int64, input *models.ProjectInput) error {
	query := `
		UPDATE projects
		SET title = ?, description = ?, category = ?, author = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		input.Title,
		input.Description,
		input.Category,
		input.Author,
		input.NormalizedImageURL(),
		id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a project. Cart rows referencing it are removed by the
// ON DELETE CASCADE constraint.
func (r *ProjectRepository) Delete(id int64) error {
	query := `
		DELETE FROM projects
		WHERE id = ?
	`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
