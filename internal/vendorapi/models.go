package vendorapi

import "github.com/shopspring/decimal"

// Item is one raw listing as the vendor API returns it.
type Item struct {
	SKU        string `json:"sku"`
	Title      string `json:"title"`
	Group      *Group `json:"group,omitempty"`
	SourceMeta *Group `json:"sourceMeta,omitempty"`
	Price      *Price `json:"price,omitempty"`
}

// Group carries the vendor-side grouping / brand hint.
type Group struct {
	Name string `json:"name"`
}

type Price struct {
	List decimal.Decimal `json:"list"`
}

// BrandHint returns the raw brand hint the vendor supplied, preferring
// the article group over the source metadata. Empty when neither is set.
func (i Item) BrandHint() string {
	if i.Group != nil && i.Group.Name != "" {
		return i.Group.Name
	}
	if i.SourceMeta != nil {
		return i.SourceMeta.Name
	}
	return ""
}

// ListPrice returns the vendor list price, zero when absent.
func (i Item) ListPrice() decimal.Decimal {
	if i.Price == nil {
		return decimal.Zero
	}
	return i.Price.List
}

// query is the fixed request body sent for every source code.
type query struct {
	SourceCode  string `json:"sourceCode"`
	Order       string `json:"order"`
	StockFilter string `json:"stockFilter"`
	Limit       int    `json:"limit"`
}
