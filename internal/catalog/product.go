package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category agrupa los productos publicados en la tienda.
type Category string

const (
	Notebooks    Category = "NOTEBOOKS"
	Computadoras Category = "COMPUTADORAS"
	Monitores    Category = "MONITORES"
	Impresoras   Category = "IMPRESORAS"
	Otros        Category = "OTROS"
)

// Categories returns every category in the order the sync pipeline
// visits them. Dedup keeps the first occurrence of a SKU, so this
// order is part of the contract.
func Categories() []Category {
	return []Category{Notebooks, Computadoras, Monitores, Impresoras, Otros}
}

// Spec map keys. All optional; absent keys are simply not stored.
const (
	SpecRAM         = "ram"
	SpecStorage     = "storage"
	SpecCPU         = "cpu"
	SpecScreenSize  = "screenSize"
	SpecPanelType   = "panelType"
	SpecRefreshRate = "refreshRate"
	SpecPrintType   = "printType"
)

type Specs map[string]string

// Product is the persisted catalog record. SKU is its permanent
// identity; sync never deletes a product and, after creation, only
// refreshes its price. Everything else belongs to the operators.
type Product struct {
	ID        uuid.UUID
	SKU       string
	Name      string
	Brand     string
	Category  Category
	PriceUSD  decimal.Decimal
	Specs     Specs
	ImageURL  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
