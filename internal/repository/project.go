package repository

import (
	"errors"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

// ProjectRepository handles database operations for projects and their images
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// isSlugConflict reports whether err is a unique violation on the slug index.
// Detection uses the driver's error code, never the message text.
func isSlugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// CreateWithImages inserts the project row and its image rows in a single
// transaction. Either both succeed or neither is committed. Image SortOrder
// values are expected to be pre-assigned, 0..len(images)-1.
func (r *ProjectRepository) CreateWithImages(project *models.Project, images []models.ProjectImage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ProjectID = project.ID
		}
		return tx.Create(&images).Error
	})
	if isSlugConflict(err) {
		return apperrors.ErrProjectSlugTaken
	}
	return err
}

// UpdateWithNewImages saves the project row and, when newImages is non-empty,
// appends them with SortOrder continuing from the current image count. The
// count is read inside the transaction so repeated edits keep a contiguous
// ascending sequence. Existing images are left untouched.
func (r *ProjectRepository) UpdateWithNewImages(project *models.Project, newImages []models.ProjectImage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Save(project).Error; err != nil {
			return err
		}
		if len(newImages) == 0 {
			return nil
		}
		var existing int64
		if err := tx.Model(&models.ProjectImage{}).
			Where("project_id = ?", project.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		for i := range newImages {
			newImages[i].ProjectID = project.ID
			newImages[i].SortOrder = int(existing) + i
		}
		return tx.Create(&newImages).Error
	})
	if isSlugConflict(err) {
		return apperrors.ErrProjectSlugTaken
	}
	return err
}

// GetByID retrieves a project by ID with its images in display order
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetBySlug retrieves a project by its slug with its images in display order
func (r *ProjectRepository) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&project, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with pagination, newest first
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetFeatured retrieves featured projects, newest first
func (r *ProjectRepository) GetFeatured(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("is_featured = ?", true).
		Order("created_at DESC").Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete deletes a project. Image rows cascade via the foreign key constraint.
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
