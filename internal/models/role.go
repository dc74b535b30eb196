package models

import "time"

// CustomRoleTitle is the title given to roles built from a freeform description.
const CustomRoleTitle = "custom"

// Role is a target job role. Skills keep their catalog order.
type Role struct {
	Key         string    `gorm:"column:role_key;type:text;primaryKey" json:"key"`
	Title       string    `gorm:"type:text;not null" json:"title" validate:"required"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Skills      []string  `gorm:"type:jsonb;serializer:json" json:"skills" validate:"dive,required"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (Role) TableName() string {
	return "roles"
}

// NewCustomRole builds an ad hoc role from a freeform description. It carries
// no required skills.
func NewCustomRole(description string) *Role {
	return &Role{
		Title:       CustomRoleTitle,
		Description: description,
		Skills:      []string{},
	}
}

// IsCustom reports whether the role did not come from the catalog.
func (r *Role) IsCustom() bool {
	return r.Key == ""
}
