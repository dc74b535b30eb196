package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/resume-ats/internal/models"
)

type RoleRepository interface {
	Upsert(role *models.Role) error
	FindAll() ([]models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Upsert implements RoleRepository.
func (r *roleRepository) Upsert(role *models.Role) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "skills", "updated_at"}),
	}).Create(role).Error
	if err != nil {
		return fmt.Errorf("failed to upsert role %s: %w", role.Key, err)
	}

	return nil
}

// FindAll implements RoleRepository.
func (r *roleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Order("role_key ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to find roles: %w", err)
	}

	return roles, nil
}
