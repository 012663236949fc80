package mappers

import (
	"helpdesk/internal/domain/project"
	"helpdesk/internal/domain/role"
	"helpdesk/internal/infrastructure/persistence/models"
)

// ProjectMapper converts tenant-scoping records: institutes, projects, roles
// and permissions. These are plain records, so conversion cannot fail.
type ProjectMapper interface {
	InstituteToModel(i *project.Institute) *models.InstituteModel
	InstituteToDomain(model *models.InstituteModel) *project.Institute
	ProjectToModel(p *project.Project) *models.ProjectModel
	ProjectToDomain(model *models.ProjectModel) *project.Project
	RoleToModel(r *role.Role) *models.RoleModel
	RoleToDomain(model *models.RoleModel) *role.Role
	PermissionToModel(p *role.Permission) *models.PermissionModel
	PermissionToDomain(model *models.PermissionModel) *role.Permission
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) InstituteToModel(i *project.Institute) *models.InstituteModel {
	return &models.InstituteModel{
		ID:   i.ID,
		Name: i.Name,
		Code: i.Code,
	}
}

func (m *ProjectMapperImpl) InstituteToDomain(model *models.InstituteModel) *project.Institute {
	return &project.Institute{
		ID:        model.ID,
		Name:      model.Name,
		Code:      model.Code,
		CreatedAt: milliToTime(model.CreatedAt),
		UpdatedAt: milliToTime(model.UpdatedAt),
	}
}

func (m *ProjectMapperImpl) ProjectToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID,
		InstituteID: p.InstituteID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func (m *ProjectMapperImpl) ProjectToDomain(model *models.ProjectModel) *project.Project {
	return &project.Project{
		ID:          model.ID,
		InstituteID: model.InstituteID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   milliToTime(model.CreatedAt),
		UpdatedAt:   milliToTime(model.UpdatedAt),
	}
}

func (m *ProjectMapperImpl) RoleToModel(r *role.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
}

func (m *ProjectMapperImpl) RoleToDomain(model *models.RoleModel) *role.Role {
	return &role.Role{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		CreatedAt:   milliToTime(model.CreatedAt),
		UpdatedAt:   milliToTime(model.UpdatedAt),
	}
}

func (m *ProjectMapperImpl) PermissionToModel(p *role.Permission) *models.PermissionModel {
	return &models.PermissionModel{
		ID:       p.ID,
		Resource: p.Resource,
		Action:   p.Action,
	}
}

func (m *ProjectMapperImpl) PermissionToDomain(model *models.PermissionModel) *role.Permission {
	return &role.Permission{
		ID:       model.ID,
		Resource: model.Resource,
		Action:   model.Action,
	}
}
