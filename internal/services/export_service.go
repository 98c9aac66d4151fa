package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bariskaplan/portfolio-hub/internal/models"
)

type ExportService struct {
	projectRepo projectLister
}

type projectLister interface {
	List(limit, offset int) ([]*models.Project, error)
	Count() (int, error)
}

func NewExportService(projectRepo projectLister) *ExportService {
	return &ExportService{
		projectRepo: projectRepo,
	}
}

// BuildProjectsWorkbook renders every project into an xlsx workbook with
// one header row and one row per project, newest first.
func (s *ExportService) BuildProjectsWorkbook() (*excelize.File, error) {
	total, err := s.projectRepo.Count()
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.List(total, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Projects"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Title", "Description", "Category", "Author", "Image URL", "Created At", "Updated At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, project := range projects {
		imageURL := ""
		if project.ImageURL != nil {
			imageURL = *project.ImageURL
		}

		values := []interface{}{
			project.ID,
			project.Title,
			project.Description,
			project.Category,
			project.Author,
			imageURL,
			project.CreatedAt.Format("2006-01-02 15:04:05"),
			project.UpdatedAt.Format("2006-01-02 15:04:05"),
		}

		cell := fmt.Sprintf("A%d", row+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}
