package repositories

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

// Add inserts a cart row for the given project. The foreign key constraint
// rejects ids of projects that do not exist, so no separate existence
// check is needed.
func (r *CartRepository) Add(projectID int64) (int64, error) {
	query := `
		INSERT INTO cart (project_id)
		VALUES (?)
	`

	result, err := r.db.Exec(query, projectID)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return 0, models.ErrProjectNotFound
		}
		return 0, err
	}

	return result.LastInsertId()
}

// GetByID retrieves a cart row by ID
func (r *CartRepository) GetByID(id int64) (*models.CartItem, error) {
	query := `
		SELECT id, project_id, created_at
		FROM cart
		WHERE id = ?
	`

	item := &models.CartItem{}
	err := r.db.QueryRow(query, id).Scan(
		&item.ID,
		&item.ProjectID,
		&item.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListWithProjects retrieves all cart rows joined with their project's
// display fields, newest first.
func (r *CartRepository) ListWithProjects() ([]*models.CartItemDetail, error) {
	query := `
		SELECT c.id, c.project_id, c.created_at,
		       p.title, p.description, p.category, p.author, p.image_url
		FROM cart c
		JOIN projects p ON c.project_id = p.id
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.CartItemDetail, 0)
	for rows.Next() {
		item := &models.CartItemDetail{}
		err := rows.Scan(
			&item.ID,
			&item.ProjectID,
			&item.CreatedAt,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.Author,
			&item.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Delete removes a cart row
func (r *CartRepository) Delete(id int64) error {
	query := `
		DELETE FROM cart
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
