package services

import (
	"database/sql"
	"errors"

	"github.com/bariskaplan/portfolio-hub/internal/models"
	"github.com/bariskaplan/portfolio-hub/internal/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProject validates the input, inserts the row and returns the
// freshly read project.
func (s *ProjectService) CreateProject(input *models.ProjectInput) (*models.Project, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, errs
	}

	id, err := s.projectRepo.Create(input)
	if err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(id)
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// ListProjects returns one page of projects, newest first, along with the
// pagination block. Page and limit fall back to 1 and 10; limit is capped.
func (s *ProjectService) ListProjects(page, limit int) ([]*models.Project, *models.Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := (page - 1) * limit

	projects, err := s.projectRepo.List(limit, offset)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.projectRepo.Count()
	if err != nil {
		return nil, nil, err
	}

	pagination := &models.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}

	return projects, pagination, nil
}

// UpdateProject validates the input, replaces all editable fields and
// returns the updated project.
func (s *ProjectService) UpdateProject(id int64, input *models.ProjectInput) (*models.Project, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.projectRepo.Update(id, input); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, err
	}

	return s.projectRepo.GetByID(id)
}

// DeleteProject removes a project by ID
func (s *ProjectService) DeleteProject(id int64) error {
	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrProjectNotFound
		}
		return err
	}
	return nil
}
