package services

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/resume-ats/internal/models"
)

// RoleCatalog is the read-only set of known roles, loaded once at startup.
type RoleCatalog interface {
	Get(key string) (*models.Role, bool)
	List() []models.Role
}

// RoleSource yields the catalog roles. The database repository implements it.
type RoleSource interface {
	FindAll() ([]models.Role, error)
}

type roleCatalog struct {
	roles map[string]models.Role
	keys  []string
}

type roleFileEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// NewRoleCatalog validates roles and indexes them by key. Duplicate or empty
// keys are rejected.
func NewRoleCatalog(roles []models.Role) (RoleCatalog, error) {
	validate := validator.New()
	catalog := &roleCatalog{roles: make(map[string]models.Role, len(roles))}

	for _, role := range roles {
		if role.Key == "" {
			return nil, fmt.Errorf("role %q has an empty key", role.Title)
		}
		if _, dup := catalog.roles[role.Key]; dup {
			return nil, fmt.Errorf("duplicate role key %q", role.Key)
		}
		if err := validate.Struct(role); err != nil {
			return nil, fmt.Errorf("invalid role %q: %w", role.Key, err)
		}

		role.Skills = cloneSkills(role.Skills)
		catalog.roles[role.Key] = role
		catalog.keys = append(catalog.keys, role.Key)
	}

	sort.Strings(catalog.keys)
	return catalog, nil
}

// LoadRolesFile reads a JSON object of role key to {title, description, skills}.
func LoadRolesFile(path string) ([]models.Role, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file %s: %w", path, err)
	}

	var entries map[string]roleFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roles file %s: %w", path, err)
	}

	roles := make([]models.Role, 0, len(entries))
	for key, entry := range entries {
		roles = append(roles, models.Role{
			Key:         key,
			Title:       entry.Title,
			Description: entry.Description,
			Skills:      entry.Skills,
		})
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Key < roles[j].Key })
	return roles, nil
}

// LoadRoleCatalogFromFile builds the catalog from a roles JSON file.
func LoadRoleCatalogFromFile(path string) (RoleCatalog, error) {
	roles, err := LoadRolesFile(path)
	if err != nil {
		return nil, err
	}
	return NewRoleCatalog(roles)
}

// LoadRoleCatalogFromSource builds the catalog from a role source such as the
// roles table.
func LoadRoleCatalogFromSource(source RoleSource) (RoleCatalog, error) {
	roles, err := source.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return NewRoleCatalog(roles)
}

// Get implements RoleCatalog. The returned role is a copy.
func (c *roleCatalog) Get(key string) (*models.Role, bool) {
	role, ok := c.roles[key]
	if !ok {
		return nil, false
	}
	role.Skills = cloneSkills(role.Skills)
	return &role, true
}

// List implements RoleCatalog. Roles are ordered by key.
func (c *roleCatalog) List() []models.Role {
	roles := make([]models.Role, 0, len(c.keys))
	for _, key := range c.keys {
		role, _ := c.Get(key)
		roles = append(roles, *role)
	}
	return roles
}

func cloneSkills(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// ResolveRole picks the role for a request. A role key takes precedence over
// a freeform description.
func ResolveRole(catalog RoleCatalog, roleKey, roleDescription string) (*models.Role, error) {
	roleKey = strings.TrimSpace(roleKey)
	roleDescription = strings.TrimSpace(roleDescription)

	switch {
	case roleKey != "":
		role, ok := catalog.Get(roleKey)
		if !ok {
			return nil, ErrUnknownRole
		}
		return role, nil
	case roleDescription != "":
		return models.NewCustomRole(roleDescription), nil
	default:
		return nil, ErrRoleRequired
	}
}
