package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/middleware"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
)

// AdminHandler bundles the operator endpoints.
type AdminHandler struct {
	cfg     *config.Config
	catalog *services.CatalogService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cfg *config.Config, catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{cfg: cfg, catalog: catalog}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the operator password for a bearer token.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	if !h.cfg.AdminEnabled() {
		return fiber.NewError(fiber.StatusNotFound, "admin access disabled")
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !utils.CheckPassword(h.cfg.AdminPasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, "admin", utils.RoleAdmin, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      token,
		"expires_in": int(h.cfg.TokenExpires.Seconds()),
	})
}

// Reload re-reads the catalog document from disk.
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	if err := h.catalog.Reload(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "catalog reload failed: "+err.Error())
	}

	doc, loadedAt := h.catalog.Document()
	subject, _ := middleware.GetAdminSubject(c)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"path":        h.catalog.Path(),
			"products":    len(doc.Products),
			"collections": len(doc.Collections),
			"bundles":     len(doc.Bundles),
			"loaded_at":   loadedAt,
			"by":          subject,
		},
	})
}
