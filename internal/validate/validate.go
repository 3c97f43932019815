package validate

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

var (
	ErrNamePriceRequired = errors.New("Product name and price are required")
	ErrBarcode           = errors.New("Please enter a barcode")
	ErrBasketEmpty       = errors.New("Please enter basket items in JSON format")
	ErrBasketJSON        = errors.New("Invalid JSON format. Please check your input.")
	ErrNoEditTarget      = errors.New("No product selected for update")
)

// ProductForm checks the create/update form. Name and a positive price are
// required; the numeric side fields fall back to their defaults when they
// fail to parse, matching the permissive form contract.
func ProductForm(name, price, stock, barcode, image, category, supermarket string) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNamePriceRequired
	}
	pr, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || pr <= 0 {
		return nil, ErrNamePriceRequired
	}
	p := &domain.Product{
		Name:          name,
		Price:         pr,
		UnitPrice:     pr,
		Stock:         IntOr(stock, 0),
		Barcode:       strings.TrimSpace(barcode),
		Image:         strings.TrimSpace(image),
		CategoryID:    IntOr(category, 1),
		SupermarketID: IntOr(supermarket, 1),
	}
	return p, nil
}

// IntOr parses an int field, returning def when it does not parse.
func IntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Barcode requires a non-empty trimmed barcode.
func Barcode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrBarcode
	}
	return s, nil
}

// BasketItems parses the freeform JSON textarea into basket items. Rejected
// input never reaches the network.
func BasketItems(raw string) ([]domain.BasketItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrBasketEmpty
	}
	var items []domain.BasketItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, ErrBasketJSON
	}
	return items, nil
}

// ID parses a positive numeric resource id.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
