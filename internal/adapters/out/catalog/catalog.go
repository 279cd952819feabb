// Package catalog is the price-list adapter. It answers which products are sold and
// what they cost, from a YAML file or from the embedded default price list.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/ports"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog implements ports.ProductCatalog, ports.PriceList and ports.ProductLister.
// It is safe for concurrent use; Reload swaps the price list atomically.
type Catalog struct {
	path string

	mu       sync.RWMutex
	snapshot snapshot
}

var (
	_ ports.ProductCatalog = (*Catalog)(nil)
	_ ports.PriceList      = (*Catalog)(nil)
	_ ports.ProductLister  = (*Catalog)(nil)
)

// NewDefault returns the catalog of the embedded price list.
func NewDefault() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from YAML. The result cannot be reloaded.
func Parse(data []byte) (*Catalog, error) {
	s, err := parse(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{snapshot: s}, nil
}

// Load reads the price list at path. An empty path selects the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewDefault()
	}
	c := &Catalog{path: path}
	if err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the price list file. On failure the current price list stays in
// place. Catalogs without a file reload as a no-op.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.path == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read price list %s: %w", c.path, err)
	}
	s, err := parse(data)
	if err != nil {
		return fmt.Errorf("invalid price list %s: %w", c.path, err)
	}

	c.mu.Lock()
	c.snapshot = s
	c.mu.Unlock()
	return nil
}

func (c *Catalog) current() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// ProductCodeExists reports whether code is listed, or true for any code when the
// price list accepts unlisted products.
func (c *Catalog) ProductCodeExists(code kernel.ProductCode) bool {
	s := c.current()
	if s.acceptUnlisted {
		return true
	}
	_, ok := s.products[code.String()]
	return ok
}

// StandardPrice returns the listed price of code, or the default price.
func (c *Catalog) StandardPrice(code kernel.ProductCode) kernel.Price {
	s := c.current()
	if price, ok := s.prices[code.String()]; ok {
		return price
	}
	return s.defaultPrice
}

func (c *Catalog) PromotionPrice(promotion kernel.PromotionCode, code kernel.ProductCode) (kernel.Price, bool) {
	prices, ok := c.current().promotions[promotion.String()]
	if !ok {
		return kernel.Price{}, false
	}
	price, ok := prices[code.String()]
	return price, ok
}

// ListProducts returns the listed products with their promotion prices.
func (c *Catalog) ListProducts(ctx context.Context) ([]ports.ProductListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := c.current()
	listings := make([]ports.ProductListing, 0, len(s.products))
	for key, code := range s.products {
		promotionPrices := make(map[string]kernel.Price)
		for promotion, prices := range s.promotions {
			if price, ok := prices[key]; ok {
				promotionPrices[promotion] = price
			}
		}
		listings = append(listings, ports.ProductListing{
			Code:            code,
			StandardPrice:   s.prices[key],
			PromotionPrices: promotionPrices,
		})
	}
	return listings, nil
}
