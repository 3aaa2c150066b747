// Package catalog loads the read-only product catalog a terminal sells from.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/tablepos/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is loaded once at startup and never mutated afterwards, so it
// is safe for concurrent readers.
type Catalog struct {
	categories []models.Category
	byID       map[string]models.Product
	byBarcode  map[string]models.Product
}

// Empty returns a catalog with no products.
func Empty() *Catalog {
	return &Catalog{
		byID:      map[string]models.Product{},
		byBarcode: map[string]models.Product{},
	}
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	categories, err := doc.toModels()
	if err != nil {
		return nil, err
	}
	return New(categories)
}

// New indexes categories and checks that product IDs and barcodes are unique.
func New(categories []models.Category) (*Catalog, error) {
	c := Empty()
	for _, cat := range categories {
		for _, p := range cat.Products {
			if p.ID == "" {
				return nil, fmt.Errorf("category %s: product without id", cat.ID)
			}
			if _, dup := c.byID[p.ID]; dup {
				return nil, fmt.Errorf("duplicate product id: %s", p.ID)
			}
			if p.Combo && len(p.OptionGroups) == 0 {
				return nil, fmt.Errorf("combo product %s has no option groups", p.ID)
			}
			if err := checkGroups(p); err != nil {
				return nil, err
			}
			c.byID[p.ID] = p
			if p.Barcode != "" {
				if other, dup := c.byBarcode[p.Barcode]; dup {
					return nil, fmt.Errorf("barcode %s used by %s and %s", p.Barcode, other.ID, p.ID)
				}
				c.byBarcode[p.Barcode] = p
			}
		}
	}
	c.categories = categories
	return c, nil
}

func checkGroups(p models.Product) error {
	seen := make(map[string]bool, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		if g.ID == "" {
			return fmt.Errorf("product %s: option group without id", p.ID)
		}
		if seen[g.ID] {
			return fmt.Errorf("product %s: duplicate option group %s", p.ID, g.ID)
		}
		seen[g.ID] = true
		if len(g.Items) == 0 {
			return fmt.Errorf("product %s: option group %s has no items", p.ID, g.ID)
		}
		items := make(map[string]bool, len(g.Items))
		for _, it := range g.Items {
			if items[it.ID] {
				return fmt.Errorf("product %s: duplicate item %s in group %s", p.ID, it.ID, g.ID)
			}
			items[it.ID] = true
		}
	}
	return nil
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Product looks up a product by ID.
func (c *Catalog) Product(id string) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// ByBarcode looks up a product by its scanned barcode.
func (c *Catalog) ByBarcode(code string) (models.Product, error) {
	p, ok := c.byBarcode[code]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: barcode %s", ErrProductNotFound, code)
	}
	return p, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.byID)
}
