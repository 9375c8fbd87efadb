package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tienda/internal/catalog"
	"tienda/internal/sync"
)

// CatalogRepository persists catalog products in Postgres. SKU
// uniqueness is enforced by the table itself.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

// FindBySKU returns the product for a SKU, or nil when it was never
// synced.
func (r *CatalogRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var (
		p     catalog.Product
		price string
		specs []byte
	)

	err := r.DB.QueryRow(ctx, `
		SELECT id, sku, name, brand, category, price_usd::text, specs, image_url, active, created_at, updated_at
		FROM catalog_products
		WHERE sku = $1
	`, sku).Scan(&p.ID, &p.SKU, &p.Name, &p.Brand, &p.Category, &price, &specs, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up sku %s: %w", sku, err)
	}

	p.PriceUSD, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price for sku %s: %w", sku, err)
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specs); err != nil {
			return nil, fmt.Errorf("invalid stored specs for sku %s: %w", sku, err)
		}
	}

	return &p, nil
}

func (r *CatalogRepository) Create(ctx context.Context, p *catalog.Product) error {
	specs := p.Specs
	if specs == nil {
		specs = catalog.Specs{}
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return fmt.Errorf("failed to encode specs for sku %s: %w", p.SKU, err)
	}

	_, err = r.DB.Exec(ctx, `
		INSERT INTO catalog_products
		(id, sku, name, brand, category, price_usd, specs, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
	`, p.ID, p.SKU, p.Name, p.Brand, string(p.Category), p.PriceUSD.String(), b, p.ImageURL, p.Active)
	if err != nil {
		return fmt.Errorf("failed to create sku %s: %w", p.SKU, err)
	}
	return nil
}

// UpdatePrice refreshes the price of an existing product and nothing
// else; every other column belongs to the operators.
func (r *CatalogRepository) UpdatePrice(ctx context.Context, sku string, price decimal.Decimal) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE catalog_products
		SET price_usd = $1, updated_at = now()
		WHERE sku = $2
	`, price.String(), sku)
	if err != nil {
		return fmt.Errorf("failed to update price for sku %s: %w", sku, err)
	}
	return nil
}

// RecordRun appends one row to the sync audit log.
func (r *CatalogRepository) RecordRun(ctx context.Context, run sync.RunRecord) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO sync_runs
		(id, started_at, finished_at, created_count, updated_count, unique_skus, failed_skus, failed_sources)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New(), run.StartedAt, run.FinishedAt,
		run.Summary.Created, run.Summary.Updated, run.Summary.UniqueSKUs,
		len(run.Summary.FailedSKUs), len(run.Summary.FailedSources))
	return err
}
