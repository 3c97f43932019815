package domain

// Wire shapes of the catalogue API. The console renders whatever the API
// returns and derives no state of its own from these beyond the session.

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	Image         string  `json:"image,omitempty"`
	CategoryID    int     `json:"category_id"`
	OwnerID       int     `json:"owner_id,omitempty"`
	Barcode       string  `json:"barcode,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	UnitPrice     float64 `json:"unit_price,omitempty"`
	LastUpdated   string  `json:"last_updated,omitempty"`
	SupermarketID int     `json:"supermarket_id,omitempty"`
}

type CompareRow struct {
	ProductID       int      `json:"product_id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	UnitPrice       *float64 `json:"unit_price,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	SupermarketID   *int     `json:"supermarket_id,omitempty"`
	SupermarketName string   `json:"supermarket_name,omitempty"`
	LastUpdated     *string  `json:"last_updated,omitempty"`
}

type CompareResponse struct {
	Barcode string       `json:"barcode"`
	Results []CompareRow `json:"results"`
	Best    *CompareRow  `json:"best,omitempty"`
}

type BasketItem struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

type BasketRequest struct {
	Items []BasketItem `json:"items"`
}

type SupermarketTotal struct {
	SupermarketID   int      `json:"supermarket_id"`
	SupermarketName string   `json:"supermarket_name,omitempty"`
	Total           float64  `json:"total"`
	Missing         []string `json:"missing"`
	MatchedItems    int      `json:"matched_items"`
}

type BasketResponse struct {
	Results []SupermarketTotal `json:"results"`
}

type SupermarketStats struct {
	SupermarketID   int     `json:"supermarket_id"`
	SupermarketName string  `json:"supermarket_name"`
	ProductCount    int     `json:"product_count"`
	AvgPrice        float64 `json:"avg_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
}

type Supermarket struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	OwnerID int    `json:"owner_id,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
