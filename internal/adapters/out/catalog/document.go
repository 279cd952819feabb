package catalog

import (
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a price list file.
type document struct {
	DefaultPrice           string                       `yaml:"defaultPrice"`
	AcceptUnlistedProducts bool                         `yaml:"acceptUnlistedProducts"`
	Products               []productEntry               `yaml:"products"`
	Promotions             map[string]map[string]string `yaml:"promotions"`
}

type productEntry struct {
	Code  string `yaml:"code"`
	Price string `yaml:"price"`
}

// snapshot is an immutable, validated price list.
type snapshot struct {
	defaultPrice   kernel.Price
	acceptUnlisted bool
	products       map[string]kernel.ProductCode
	prices         map[string]kernel.Price
	promotions     map[string]map[string]kernel.Price
}

// parse validates a YAML price list and reports every problem found.
func parse(data []byte) (snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return snapshot{}, fmt.Errorf("failed to decode price list: %w", err)
	}

	s := snapshot{
		acceptUnlisted: doc.AcceptUnlistedProducts,
		products:       make(map[string]kernel.ProductCode, len(doc.Products)),
		prices:         make(map[string]kernel.Price, len(doc.Products)),
		promotions:     make(map[string]map[string]kernel.Price, len(doc.Promotions)),
	}

	var problems []error
	defaultPrice, err := parsePrice(doc.DefaultPrice, "defaultPrice")
	if err != nil {
		problems = append(problems, err)
	}
	s.defaultPrice = defaultPrice

	for i, entry := range doc.Products {
		field := fmt.Sprintf("products[%d]", i)
		code, codeErr := kernel.NewProductCode(entry.Code, field+".code")
		price, priceErr := parsePrice(entry.Price, field+".price")
		if err := errors.Join(codeErr, priceErr); err != nil {
			problems = append(problems, err)
			continue
		}
		s.products[code.String()] = code
		s.prices[code.String()] = price
	}

	for rawPromotion, entries := range doc.Promotions {
		promotion, err := kernel.NewPromotionCode(rawPromotion, "promotions")
		if err != nil {
			problems = append(problems, err)
			continue
		}
		prices := make(map[string]kernel.Price, len(entries))
		for rawCode, rawPrice := range entries {
			field := fmt.Sprintf("promotions.%s.%s", promotion, rawCode)
			code, codeErr := kernel.NewProductCode(rawCode, field)
			price, priceErr := parsePrice(rawPrice, field)
			if err := errors.Join(codeErr, priceErr); err != nil {
				problems = append(problems, err)
				continue
			}
			prices[code.String()] = price
		}
		s.promotions[promotion.String()] = prices
	}

	if err := errors.Join(problems...); err != nil {
		return snapshot{}, err
	}
	return s, nil
}

func parsePrice(raw, field string) (kernel.Price, error) {
	if raw == "" {
		return kernel.Price{}, errs.NewValueIsRequiredError(field)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Price{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return kernel.NewPrice(value, field)
}
