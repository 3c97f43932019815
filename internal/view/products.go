package view

import (
	"encoding/json"
	"strconv"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

// ProductRow is one table line with its per-row affordances resolved.
type ProductRow struct {
	ID          int
	Name        string
	Price       string
	Stock       int
	Barcode     string
	Supermarket string
	CanManage   bool
}

type ProductTable struct {
	Rows  []ProductRow
	Total int
	Empty bool
}

// CanManage reports whether mutation affordances are shown for a product:
// admins always, otherwise only the owner. This is a display affordance, not
// authorization; the API enforces access on its own.
func CanManage(u *domain.User, p domain.Product) bool {
	if u == nil {
		return false
	}
	return u.Role == "admin" || (p.OwnerID != 0 && p.OwnerID == u.ID)
}

func Products(items []domain.Product, u *domain.User) ProductTable {
	t := ProductTable{Total: len(items), Empty: len(items) == 0}
	for _, p := range items {
		sm := "-"
		if p.SupermarketID != 0 {
			sm = strconv.Itoa(p.SupermarketID)
		}
		t.Rows = append(t.Rows, ProductRow{
			ID:          p.ID,
			Name:        p.Name,
			Price:       Money(p.Price),
			Stock:       p.Stock,
			Barcode:     Text(p.Barcode),
			Supermarket: sm,
			CanManage:   CanManage(u, p),
		})
	}
	return t
}

// ProductDump is the detail page's pretty-printed record.
func ProductDump(p *domain.Product) string {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
