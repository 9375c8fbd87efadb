package sync

import (
	"strings"

	"github.com/shopspring/decimal"

	"tienda/internal/catalog"
	"tienda/internal/vendorapi"
)

// Item is one vendor listing after classification, tagged with the
// category it was fetched for. It lives only for the duration of a run.
type Item struct {
	SKU       string
	Title     string
	BrandHint string
	Price     decimal.Decimal
	Category  catalog.Category
}

// Classifier decides which raw listings enter the pipeline.
type Classifier struct {
	cfg *catalog.Config
}

func NewClassifier(cfg *catalog.Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify filters one raw listing. Listings without a SKU are dropped,
// then the uppercased title runs through the blacklist, then through
// the per-category inclusion rules. Survivors come back tagged with
// their target category.
func (c *Classifier) Classify(raw vendorapi.Item, cat catalog.Category) (Item, bool) {
	if raw.SKU == "" {
		return Item{}, false
	}

	title := strings.ToUpper(raw.Title)
	for _, term := range c.cfg.Blacklist {
		if strings.Contains(title, term) {
			return Item{}, false
		}
	}

	// NOTEBOOKS additionally require a notebook-indicating token;
	// the source codes for this category also carry docking gear and
	// the like, which the blacklist alone does not catch.
	if cat == catalog.Notebooks && !containsAny(title, c.cfg.NotebookTokens) {
		return Item{}, false
	}

	return Item{
		SKU:       raw.SKU,
		Title:     raw.Title,
		BrandHint: raw.BrandHint(),
		Price:     raw.ListPrice(),
		Category:  cat,
	}, true
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
