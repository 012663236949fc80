package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/project"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type InstituteRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewInstituteRepository(database *gorm.DB) *InstituteRepository {
	return &InstituteRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *InstituteRepository) Save(ctx context.Context, institute *project.Institute) error {
	if err := institute.Validate(); err != nil {
		return err
	}

	model := r.mapper.InstituteToModel(institute)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("institute code already exists")
		}
		return fmt.Errorf("failed to save institute: %w", err)
	}

	institute.ID = model.ID
	return nil
}

func (r *InstituteRepository) Update(ctx context.Context, institute *project.Institute) error {
	if err := institute.Validate(); err != nil {
		return err
	}

	model := r.mapper.InstituteToModel(institute)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InstituteModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Code").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update institute: %w", result.Error)
	}

	return nil
}

func (r *InstituteRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.InstituteModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete institute: %w", err)
	}

	return nil
}

func (r *InstituteRepository) GetByID(ctx context.Context, id uint) (*project.Institute, error) {
	var model models.InstituteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("institute not found")
		}
		return nil, fmt.Errorf("failed to find institute: %w", err)
	}

	return r.mapper.InstituteToDomain(&model), nil
}

func (r *InstituteRepository) List(ctx context.Context, limit, offset int) ([]*project.Institute, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InstituteModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count institutes: %w", err)
	}

	var rows []models.InstituteModel
	if err := query.
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list institutes: %w", err)
	}

	institutes := make([]*project.Institute, 0, len(rows))
	for idx := range rows {
		institutes = append(institutes, r.mapper.InstituteToDomain(&rows[idx]))
	}

	return institutes, total, nil
}

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	model := r.mapper.ProjectToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	p.ID = model.ID
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	model := r.mapper.ProjectToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Description").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.ProjectModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ProjectToDomain(&model), nil
}

func (r *ProjectRepository) ListByInstitute(ctx context.Context, instituteID uint, limit, offset int) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.ProjectModel{}).
		Where("institute_id = ?", instituteID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var rows []models.ProjectModel
	if err := query.
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(rows))
	for idx := range rows {
		projects = append(projects, r.mapper.ProjectToDomain(&rows[idx]))
	}

	return projects, total, nil
}
