package view

import (
	"fmt"
	"strings"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

// CompareRow mirrors one barcode offer; Best marks the server-designated
// best entry by product id identity.
type CompareRow struct {
	ProductID   int
	Name        string
	Price       string
	UnitPrice   string
	Supermarket string
	LastUpdated string
	Best        bool
}

type CompareTable struct {
	Barcode string
	Rows    []CompareRow
	Banner  string // best-offer summary, empty when the server sent no best
	Empty   bool
}

func Compare(resp *domain.CompareResponse) CompareTable {
	t := CompareTable{Barcode: resp.Barcode, Empty: len(resp.Results) == 0}
	for _, r := range resp.Results {
		t.Rows = append(t.Rows, CompareRow{
			ProductID:   r.ProductID,
			Name:        r.Name,
			Price:       Money(r.Price),
			UnitPrice:   MoneyPtr(r.UnitPrice),
			Supermarket: Text(r.SupermarketName),
			LastUpdated: TextPtr(r.LastUpdated),
			Best:        resp.Best != nil && r.ProductID == resp.Best.ProductID,
		})
	}
	if b := resp.Best; b != nil {
		price := Money(b.Price)
		suffix := ""
		if b.UnitPrice != nil {
			price = Money(*b.UnitPrice)
			suffix = " (unit price)"
		}
		from := b.SupermarketName
		if from == "" {
			from = "Unknown"
		}
		t.Banner = fmt.Sprintf("%s at %s%s from %s", b.Name, price, suffix, from)
	}
	return t
}

// BasketRow is one supermarket's basket total.
type BasketRow struct {
	SupermarketID   int
	SupermarketName string
	Total           string
	MatchedItems    int
	Missing         string
	Best            bool
}

type BasketTable struct {
	Rows   []BasketRow
	Banner string
	Empty  bool
}

// BestBasket picks the minimum total by linear scan, first minimum winning
// on ties. The API sends no best entry for baskets, so this pick is the
// console's own.
func BestBasket(results []domain.SupermarketTotal) *domain.SupermarketTotal {
	if len(results) == 0 {
		return nil
	}
	best := &results[0]
	for i := 1; i < len(results); i++ {
		if results[i].Total < best.Total {
			best = &results[i]
		}
	}
	return best
}

func Basket(resp *domain.BasketResponse) BasketTable {
	t := BasketTable{Empty: len(resp.Results) == 0}
	best := BestBasket(resp.Results)
	for _, r := range resp.Results {
		missing := "None"
		if len(r.Missing) > 0 {
			missing = strings.Join(r.Missing, ", ")
		}
		t.Rows = append(t.Rows, BasketRow{
			SupermarketID:   r.SupermarketID,
			SupermarketName: r.SupermarketName,
			Total:           Money(r.Total),
			MatchedItems:    r.MatchedItems,
			Missing:         missing,
			Best:            best != nil && r.SupermarketID == best.SupermarketID,
		})
	}
	if best != nil {
		t.Banner = fmt.Sprintf("%s - Total: %s", best.SupermarketName, Money(best.Total))
		if n := len(best.Missing); n > 0 {
			t.Banner += fmt.Sprintf(" (Note: %d items missing)", n)
		}
	}
	return t
}
