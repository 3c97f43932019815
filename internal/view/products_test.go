package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gTurboflex/supermarket-console/internal/domain"
	"github.com/gTurboflex/supermarket-console/internal/view"
)

func TestCanManage(t *testing.T) {
	p := domain.Product{ID: 3, OwnerID: 7}

	require.False(t, view.CanManage(nil, p), "logged out")
	require.False(t, view.CanManage(&domain.User{ID: 8, Role: "user"}, p), "stranger")
	require.True(t, view.CanManage(&domain.User{ID: 7, Role: "user"}, p), "owner")
	require.True(t, view.CanManage(&domain.User{ID: 8, Role: "admin"}, p), "admin")

	// Unowned rows are admin-only.
	require.False(t, view.CanManage(&domain.User{ID: 0, Role: "user"}, domain.Product{ID: 4}))
	require.True(t, view.CanManage(&domain.User{ID: 0, Role: "admin"}, domain.Product{ID: 4}))
}

func TestProductsTable(t *testing.T) {
	u := &domain.User{ID: 7, Role: "user"}
	tbl := view.Products([]domain.Product{
		{ID: 1, Name: "Milk", Price: 450.5, Stock: 3, Barcode: "4870001", SupermarketID: 2, OwnerID: 7},
		{ID: 2, Name: "Bread", Price: 300},
	}, u)

	require.False(t, tbl.Empty)
	require.Equal(t, 2, tbl.Total)
	require.Equal(t, "₸450.50", tbl.Rows[0].Price)
	require.Equal(t, "4870001", tbl.Rows[0].Barcode)
	require.Equal(t, "2", tbl.Rows[0].Supermarket)
	require.True(t, tbl.Rows[0].CanManage)
	require.Equal(t, "-", tbl.Rows[1].Barcode)
	require.Equal(t, "-", tbl.Rows[1].Supermarket)
	require.False(t, tbl.Rows[1].CanManage)
}

func TestProductsTableEmpty(t *testing.T) {
	tbl := view.Products(nil, nil)
	require.True(t, tbl.Empty)
	require.Zero(t, tbl.Total)
}

func TestProductDump(t *testing.T) {
	dump := view.ProductDump(&domain.Product{ID: 1, Name: "Milk", Price: 450})
	require.Contains(t, dump, `"id": 1`)
	require.Contains(t, dump, `"name": "Milk"`)
}

func TestStatsDefaultsNullPricesToZero(t *testing.T) {
	tbl := view.Stats([]domain.SupermarketStats{
		{SupermarketID: 1, SupermarketName: "Empty Market", ProductCount: 0},
	})
	require.Equal(t, "₸0.00", tbl.Rows[0].AvgPrice)
	require.Equal(t, "₸0.00", tbl.Rows[0].MinPrice)
	require.Equal(t, "₸0.00", tbl.Rows[0].MaxPrice)
}
