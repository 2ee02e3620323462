// Package catalog serves the static fund category catalog. Entries pair each
// allocation category with example fund names; the names are placeholders for
// display, not live market data.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Category describes one fund category and its example funds
type Category struct {
	Key         string   `json:"key" yaml:"key"`
	Label       string   `json:"label" yaml:"label"`
	AssetClass  string   `json:"asset_class" yaml:"asset_class"`
	Description string   `json:"description" yaml:"description"`
	Funds       []string `json:"funds" yaml:"funds"`
}

// Service answers catalog listings and fund lookups from the embedded file
type Service struct {
	byLabel    map[string]Category
	categories []Category
	log        zerolog.Logger
}

// NewService parses the embedded catalog
func NewService(log zerolog.Logger) (*Service, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byLabel := make(map[string]Category, len(doc.Categories))
	for _, cat := range doc.Categories {
		byLabel[lookupKey(cat.AssetClass, cat.Label)] = cat
	}

	s := &Service{
		byLabel:    byLabel,
		categories: doc.Categories,
		log:        log.With().Str("service", "catalog").Logger(),
	}

	s.log.Debug().Int("categories", len(s.categories)).Msg("Catalog loaded")

	return s, nil
}

func lookupKey(assetClass, label string) string {
	return assetClass + "/" + label
}

// Categories returns all catalog entries in file order
func (s *Service) Categories() []Category {
	return s.categories
}

// RecommendedFunds returns the example funds for an allocation row. It
// matches the (asset class, label) pairs the allocation engine emits, such
// as ("Equity", "Largecap") or ("Debt", "FD").
func (s *Service) RecommendedFunds(category, subcategory string) []string {
	cat, ok := s.byLabel[lookupKey(category, subcategory)]
	if !ok {
		return nil
	}
	return cat.Funds
}
