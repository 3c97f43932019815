package view

import (
	"encoding/json"
	"time"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

type StatsRow struct {
	SupermarketID   int
	SupermarketName string
	ProductCount    int
	AvgPrice        string
	MinPrice        string
	MaxPrice        string
}

type StatsTable struct {
	Rows  []StatsRow
	Total int
	Empty bool
}

// Stats formats each supermarket's aggregates; prices the API left null
// arrive as zero and render as ₸0.00.
func Stats(items []domain.SupermarketStats) StatsTable {
	t := StatsTable{Total: len(items), Empty: len(items) == 0}
	for _, s := range items {
		t.Rows = append(t.Rows, StatsRow{
			SupermarketID:   s.SupermarketID,
			SupermarketName: s.SupermarketName,
			ProductCount:    s.ProductCount,
			AvgPrice:        Money(s.AvgPrice),
			MinPrice:        Money(s.MinPrice),
			MaxPrice:        Money(s.MaxPrice),
		})
	}
	return t
}

type HealthPanel struct {
	Status    string
	Message   string
	Timestamp string
	Dump      string
}

func HealthView(h *domain.Health, now time.Time) HealthPanel {
	b, _ := json.MarshalIndent(h, "", "  ")
	return HealthPanel{
		Status:    h.Status,
		Message:   h.Message,
		Timestamp: now.Local().Format("2006-01-02 15:04:05"),
		Dump:      string(b),
	}
}
