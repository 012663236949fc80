package project

import (
	"context"
	"fmt"
	"time"
)

// Institute is a tenant: every project belongs to one institute.
type Institute struct {
	ID        uint
	Name      string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project scopes issues, hierarchies and role placements.
type Project struct {
	ID          uint
	InstituteID uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i *Institute) Validate() error {
	if len(i.Name) == 0 {
		return fmt.Errorf("institute name is required")
	}
	return nil
}

func (p *Project) Validate() error {
	if p.InstituteID == 0 {
		return fmt.Errorf("institute ID is required")
	}
	if len(p.Name) == 0 {
		return fmt.Errorf("project name is required")
	}
	return nil
}

type InstituteRepository interface {
	Save(ctx context.Context, institute *Institute) error
	Update(ctx context.Context, institute *Institute) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Institute, error)
	List(ctx context.Context, limit, offset int) ([]*Institute, int64, error)
}

type ProjectRepository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListByInstitute(ctx context.Context, instituteID uint, limit, offset int) ([]*Project, int64, error)
}
