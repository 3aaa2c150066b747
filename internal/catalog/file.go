package catalog

import (
	"fmt"

	"github.com/mmynk/tablepos/internal/models"
)

type fileDoc struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Products []fileProduct `yaml:"products"`
}

type fileProduct struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Price   float64     `yaml:"price"`
	Barcode string      `yaml:"barcode"`
	Combo   bool        `yaml:"combo"`
	Groups  []fileGroup `yaml:"groups"`
}

type fileGroup struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Slot   string     `yaml:"slot"`
	Policy string     `yaml:"policy"`
	Max    int        `yaml:"max"`
	Items  []fileItem `yaml:"items"`
}

type fileItem struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Extra float64 `yaml:"extra"`
	Hint  string  `yaml:"hint"`
}

// ParsePolicy maps the catalog spelling of a selection policy to its value.
// An empty policy means required; multiple without a max allows one item.
func ParsePolicy(kind string, max int) (models.SelectionPolicy, error) {
	switch kind {
	case "", "required":
		return models.SelectionPolicy{Kind: models.PolicyRequired}, nil
	case "optional":
		return models.SelectionPolicy{Kind: models.PolicyOptional}, nil
	case "multiple":
		if max < 1 {
			max = 1
		}
		return models.SelectionPolicy{Kind: models.PolicyMultiple, Max: max}, nil
	default:
		return models.SelectionPolicy{}, fmt.Errorf("unknown selection policy %q", kind)
	}
}

func (d fileDoc) toModels() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(d.Categories))
	for _, fc := range d.Categories {
		cat := models.Category{ID: fc.ID, Name: fc.Name}
		for _, fp := range fc.Products {
			p := models.Product{
				ID:       fp.ID,
				Name:     fp.Name,
				Price:    fp.Price,
				Barcode:  fp.Barcode,
				Category: fc.Name,
				Combo:    fp.Combo || len(fp.Groups) > 0,
			}
			for _, fg := range fp.Groups {
				policy, err := ParsePolicy(fg.Policy, fg.Max)
				if err != nil {
					return nil, fmt.Errorf("product %s, group %s: %w", fp.ID, fg.ID, err)
				}
				g := models.ComboOptionGroup{
					ID:     fg.ID,
					Name:   fg.Name,
					Slot:   models.Slot(fg.Slot),
					Policy: policy,
				}
				for _, fi := range fg.Items {
					g.Items = append(g.Items, models.ComboItem{
						ID:         fi.ID,
						Name:       fi.Name,
						ExtraPrice: fi.Extra,
						Hint:       fi.Hint,
					})
				}
				p.OptionGroups = append(p.OptionGroups, g)
			}
			cat.Products = append(cat.Products, p)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
