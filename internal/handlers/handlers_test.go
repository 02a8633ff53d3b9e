package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/middleware"
	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
)

type envelope struct {
	Success    bool            `json:"success"`
	Token      string          `json:"token"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		CurrentPage  int `json:"current_page"`
		ItemsPerPage int `json:"items_per_page"`
		TotalItems   int `json:"total_items"`
	} `json:"pagination"`
}

func sampleCatalog() *models.Catalog {
	return &models.Catalog{
		Metadata: models.Metadata{Version: "4.1.0", Currency: "SAR"},
		Collections: []models.Collection{
			{ID: "mixoil", Name: models.Text{AR: "ميكس أويل", EN: "Mixoil"}},
			{ID: "cocoshea", Name: models.Text{AR: "كوكوشيا", EN: "CocoShea"}},
		},
		Products: []models.Product{
			{ID: "mixoil-rosemary", Collection: "mixoil", Type: models.TypeOil, Price: 95,
				Name: models.Text{AR: "زيت إكليل الجبل", EN: "Rosemary Oil"}, Concerns: []models.Concern{models.ConcernHairLoss}},
			{ID: "mixoil-shampoo", Collection: "mixoil", Type: models.TypeShampoo, Price: 80,
				Name: models.Text{AR: "شامبو", EN: "Mixoil Shampoo"}, Concerns: []models.Concern{models.ConcernFrizz}},
			{ID: "cocoshea-body-butter", Collection: "cocoshea", Type: models.TypeBodyButter, Price: 120,
				Name: models.Text{AR: "زبدة الجسم", EN: "CocoShea Body Butter"}},
		},
		Bundles: []models.Bundle{
			{ID: "mixoil-bundle", Collection: "mixoil", OriginalPrice: 175, SalePrice: 140, Savings: 35, Discount: 20},
			{ID: "cocoshea-bundle", Collection: "cocoshea", OriginalPrice: 300, SalePrice: 240, Savings: 60, Discount: 20},
		},
	}
}

func setup(t *testing.T) (*fiber.App, *services.CatalogService, *config.Config) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, catalog.Save(path, sampleCatalog()))

	svc := services.NewCatalogService(path, nil)
	require.NoError(t, svc.Reload())

	hash, err := utils.HashPassword("letmein-please")
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "secret", AdminPasswordHash: hash, TokenExpires: time.Hour}

	catalogHandler := NewCatalogHandler(svc)
	adminHandler := NewAdminHandler(cfg, svc)

	app := fiber.New()
	app.Get("/health", catalogHandler.Health)
	app.Get("/catalog", catalogHandler.Document)
	app.Get("/products", catalogHandler.ListProducts)
	app.Get("/products/:id", catalogHandler.GetProduct)
	app.Get("/collections", catalogHandler.ListCollections)
	app.Get("/bundles", catalogHandler.ListBundles)
	app.Post("/login", adminHandler.Login)
	app.Post("/reload", middleware.AdminOnly(cfg.JWTSecret), adminHandler.Reload)
	return app, svc, cfg
}

func do(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestDocumentServedVerbatim(t *testing.T) {
	app, svc, _ := setup(t)
	want, err := os.ReadFile(svc.Path())
	require.NoError(t, err)

	status, body := do(t, app, "GET", "/catalog", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(want), string(body))

	etag := `"` + svc.Fingerprint() + `"`
	status, _ = do(t, app, "GET", "/catalog", "", "If-None-Match", etag)
	assert.Equal(t, fiber.StatusNotModified, status)
}

func TestListProductsFilters(t *testing.T) {
	app, _, _ := setup(t)

	cases := []struct {
		query string
		ids   []string
	}{
		{"", []string{"mixoil-rosemary", "mixoil-shampoo", "cocoshea-body-butter"}},
		{"?collection=mixoil", []string{"mixoil-rosemary", "mixoil-shampoo"}},
		{"?type=body-butter", []string{"cocoshea-body-butter"}},
		{"?concern=frizz", []string{"mixoil-shampoo"}},
		{"?search=ROSEMARY", []string{"mixoil-rosemary"}},
		{"?search=" + url.QueryEscape("زبدة"), []string{"cocoshea-body-butter"}},
		{"?limit=2&page=2", []string{"cocoshea-body-butter"}},
		{"?limit=2&page=9", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			status, body := do(t, app, "GET", "/products"+tc.query, "")
			require.Equal(t, fiber.StatusOK, status)

			env := decode(t, body)
			var products []models.Product
			require.NoError(t, json.Unmarshal(env.Data, &products))
			ids := []string{}
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func TestListProductsRejectsUnknownType(t *testing.T) {
	app, _, _ := setup(t)
	status, _ := do(t, app, "GET", "/products?type=perfume", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetProduct(t *testing.T) {
	app, _, _ := setup(t)

	status, body := do(t, app, "GET", "/products/mixoil-shampoo", "")
	require.Equal(t, fiber.StatusOK, status)
	var p models.Product
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &p))
	assert.Equal(t, "Mixoil Shampoo", p.Name.EN)

	status, _ = do(t, app, "GET", "/products/nope", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestBundlesByCollection(t *testing.T) {
	app, _, _ := setup(t)

	_, body := do(t, app, "GET", "/bundles?collection=cocoshea", "")
	var bundles []models.Bundle
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &bundles))
	require.Len(t, bundles, 1)
	assert.Equal(t, "cocoshea-bundle", bundles[0].ID)

	_, body = do(t, app, "GET", "/collections", "")
	var collections []models.Collection
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &collections))
	assert.Len(t, collections, 2)
}

func TestLoginAndReload(t *testing.T) {
	app, svc, _ := setup(t)

	status, _ := do(t, app, "POST", "/login", `{"password":"wrong"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := do(t, app, "POST", "/login", `{"password":"letmein-please"}`)
	require.Equal(t, fiber.StatusOK, status)
	token := decode(t, body).Token
	require.NotEmpty(t, token)

	status, _ = do(t, app, "POST", "/reload", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	updated := sampleCatalog()
	updated.Products = updated.Products[:1]
	require.NoError(t, catalog.Save(svc.Path(), updated))

	status, _ = do(t, app, "POST", "/reload", "", "Authorization", "Bearer "+token)
	require.Equal(t, fiber.StatusOK, status)

	_, body = do(t, app, "GET", "/products", "")
	assert.Equal(t, 1, decode(t, body).Pagination.TotalItems)
}

func TestReloadFailureKeepsDocument(t *testing.T) {
	app, svc, cfg := setup(t)
	token, err := utils.GenerateToken(cfg.JWTSecret, "admin", utils.RoleAdmin, time.Hour)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(svc.Path(), []byte("{broken"), 0o644))

	status, _ := do(t, app, "POST", "/reload", "", "Authorization", "Bearer "+token)
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, body := do(t, app, "GET", "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode(t, body).Success)
}

func TestEndpointsBeforeLoad(t *testing.T) {
	svc := services.NewCatalogService(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, svc.Reload())

	h := NewCatalogHandler(svc)
	app := fiber.New()
	app.Get("/health", h.Health)
	app.Get("/catalog", h.Document)
	app.Get("/products", h.ListProducts)

	for _, target := range []string{"/health", "/catalog", "/products"} {
		status, _ := do(t, app, "GET", target, "")
		assert.Equal(t, fiber.StatusServiceUnavailable, status, target)
	}
}
