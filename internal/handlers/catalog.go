package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
)

// CatalogHandler serves the read-only catalog API.
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Health reports whether a catalog document is loaded.
func (h *CatalogHandler) Health(c *fiber.Ctx) error {
	doc, loadedAt := h.catalog.Document()
	if doc == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"status":  "catalog not loaded",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"status":      "ok",
		"version":     doc.Metadata.Version,
		"products":    len(doc.Products),
		"fingerprint": h.catalog.Fingerprint(),
		"loaded_at":   loadedAt,
	})
}

// Document returns the catalog file exactly as stored.
func (h *CatalogHandler) Document(c *fiber.Ctx) error {
	raw, fingerprint := h.catalog.Raw()
	if raw == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "catalog not loaded")
	}
	etag := `"` + fingerprint + `"`
	c.Set(fiber.HeaderETag, etag)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(raw)
}

// ListProducts returns paginated products with optional filters.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	if !h.catalog.Loaded() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "catalog not loaded")
	}

	pg := utils.ParsePagination(c)
	filter := services.ProductFilter{
		Collection: strings.TrimSpace(c.Query("collection")),
		Type:       models.ProductType(strings.TrimSpace(c.Query("type"))),
		Concern:    models.Concern(strings.TrimSpace(c.Query("concern"))),
		Search:     c.Query("search"),
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown product type")
	}

	products := h.catalog.Products(filter)
	total := len(products)

	start, end := pg.Window(total)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct returns one product by its catalog identifier.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.catalog.Product(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// ListCollections returns every collection.
func (h *CatalogHandler) ListCollections(c *fiber.Ctx) error {
	doc, _ := h.catalog.Document()
	if doc == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "catalog not loaded")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    doc.Collections,
	})
}

// ListBundles returns every bundle, optionally for one collection.
func (h *CatalogHandler) ListBundles(c *fiber.Ctx) error {
	doc, _ := h.catalog.Document()
	if doc == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "catalog not loaded")
	}

	bundles := doc.Bundles
	if collection := c.Query("collection"); collection != "" {
		bundles = make([]models.Bundle, 0, len(doc.Bundles))
		for _, b := range doc.Bundles {
			if b.Collection == collection {
				bundles = append(bundles, b)
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bundles,
	})
}
