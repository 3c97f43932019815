package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

// Products and product mutations.

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Comparisons.

func (c *Client) CompareBarcode(ctx context.Context, barcode string) (*domain.CompareResponse, error) {
	var out domain.CompareResponse
	if err := c.do(ctx, http.MethodGet, "/products/compare/"+barcode, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompareBasket(ctx context.Context, items []domain.BasketItem) (*domain.BasketResponse, error) {
	var out domain.BasketResponse
	req := domain.BasketRequest{Items: items}
	if err := c.do(ctx, http.MethodPost, "/basket/compare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Supermarkets.

func (c *Client) SupermarketStats(ctx context.Context) ([]domain.SupermarketStats, error) {
	var out []domain.SupermarketStats
	err := c.do(ctx, http.MethodGet, "/supermarkets/stats", nil, &out)
	return out, err
}

func (c *Client) Supermarkets(ctx context.Context) ([]domain.Supermarket, error) {
	var out []domain.Supermarket
	err := c.do(ctx, http.MethodGet, "/supermarkets", nil, &out)
	return out, err
}

func (c *Client) Supermarket(ctx context.Context, id int) (*domain.Supermarket, error) {
	var out domain.Supermarket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/supermarkets/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSupermarket(ctx context.Context, s *domain.Supermarket) (*domain.Supermarket, error) {
	var out domain.Supermarket
	if err := c.do(ctx, http.MethodPost, "/admin/supermarkets", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSupermarket(ctx context.Context, id int, s *domain.Supermarket) (*domain.Supermarket, error) {
	var out domain.Supermarket
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/supermarkets/%d", id), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSupermarket(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/supermarkets/%d", id), nil, nil)
}

// Users and auth.

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login establishes the session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	body := credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}
	if err := c.Session.Establish(out.Token, out.User); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and establishes the session, mirroring Login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	body := credentials{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/register", body, &out); err != nil {
		return nil, err
	}
	if err := c.Session.Establish(out.Token, out.User); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var out domain.Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
