package services

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/models"
)

// CatalogService keeps the published catalog document in memory for the
// storefront API. Reload swaps the whole document; readers never see a mix.
type CatalogService struct {
	path   string
	logger *zap.Logger

	mu          sync.RWMutex
	raw         []byte
	doc         *models.Catalog
	fingerprint string
	loadedAt    time.Time
}

// ProductFilter narrows a product listing. Empty fields match everything.
type ProductFilter struct {
	Collection string
	Type       models.ProductType
	Concern    models.Concern
	Search     string
}

// NewCatalogService creates a service for the document at path. Call Reload
// before serving.
func NewCatalogService(path string, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{path: path, logger: logger}
}

// Path returns the file the service reads.
func (s *CatalogService) Path() string { return s.path }

// Reload reads the document from disk. On failure the previously loaded
// document stays in place.
func (s *CatalogService) Reload() error {
	raw, doc, err := catalog.LoadRaw(s.path)
	if err != nil {
		s.logger.Warn("catalog reload failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	fingerprint, err := catalog.Fingerprint(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.raw = raw
	s.doc = doc
	s.fingerprint = fingerprint
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		zap.String("path", s.path),
		zap.Int("products", len(doc.Products)),
		zap.Int("collections", len(doc.Collections)),
		zap.Int("bundles", len(doc.Bundles)),
		zap.String("fingerprint", fingerprint),
	)
	return nil
}

// Loaded reports whether a document is available.
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil
}

// Raw returns the document bytes exactly as read from disk along with their
// fingerprint.
func (s *CatalogService) Raw() ([]byte, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw, s.fingerprint
}

// Fingerprint returns the canonical hash of the loaded document.
func (s *CatalogService) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

// Document returns the current document and when it was loaded. The
// document must be treated as read-only.
func (s *CatalogService) Document() (*models.Catalog, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.loadedAt
}

// Products returns the products matching f in catalog order.
func (s *CatalogService) Products(f ProductFilter) []models.Product {
	doc, _ := s.Document()
	if doc == nil {
		return nil
	}

	search := normalize(f.Search)
	out := make([]models.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if f.Collection != "" && p.Collection != f.Collection {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Concern != "" && !p.HasConcern(f.Concern) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Product looks up a product by identifier.
func (s *CatalogService) Product(id string) (models.Product, bool) {
	doc, _ := s.Document()
	if doc == nil {
		return models.Product{}, false
	}
	return doc.FindProduct(id)
}

// normalize folds compatibility forms (Arabic presentation forms, full-width
// Latin) and case so that searches match what the shopper typed.
func normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))
}

func matchesSearch(p models.Product, needle string) bool {
	for _, hay := range []string{p.ID, p.Name.EN, p.Name.AR} {
		if strings.Contains(normalize(hay), needle) {
			return true
		}
	}
	return false
}
