package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type RolesHandler struct {
	catalog services.RoleCatalog
}

func NewRolesHandler(catalog services.RoleCatalog) *RolesHandler {
	return &RolesHandler{
		catalog: catalog,
	}
}

// HandleListRoles handles GET /roles
func (h *RolesHandler) HandleListRoles(c *fiber.Ctx) error {
	roles := h.catalog.List()

	out := make(map[string]models.RoleSummary, len(roles))
	for _, role := range roles {
		out[role.Key] = models.RoleSummary{
			Title:       role.Title,
			Description: role.Description,
		}
	}

	return c.JSON(out)
}
