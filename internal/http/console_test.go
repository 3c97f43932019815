package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/domain"
	"github.com/gTurboflex/supermarket-console/internal/http/handlers"
	"github.com/gTurboflex/supermarket-console/internal/session"
)

// upstream is a stateful stub of the catalogue API: enough of the product
// surface for the console flows, plus a forced-failure switch.
type upstream struct {
	mu       sync.Mutex
	products map[int]domain.Product
	nextID   int
	calls    []string

	failStatus int
	failBody   string

	compare *domain.CompareResponse
	basket  *domain.BasketResponse
	stats   []domain.SupermarketStats
	users   []domain.User
}

func newUpstream() *upstream {
	return &upstream{products: map[int]domain.Product{}, nextID: 1}
}

func (u *upstream) fail(status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failStatus, u.failBody = status, body
}

func (u *upstream) seed(p domain.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.products[p.ID] = p
	if p.ID >= u.nextID {
		u.nextID = p.ID + 1
	}
}

func (u *upstream) seen(call string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, c := range u.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (u *upstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls = append(u.calls, r.Method+" "+r.URL.Path)
	if u.failStatus != 0 {
		status, body := u.failStatus, u.failBody
		u.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return
	}
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && (r.URL.Path == "/login" || r.URL.Path == "/register"):
		_ = json.NewEncoder(w).Encode(domain.AuthResponse{
			Token: "tok-test",
			User:  &domain.User{ID: 7, Name: "Aru", Email: "aru@example.com", Role: "user"},
		})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/products/compare/"):
		if u.compare == nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"no offers found for barcode"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(u.compare)
	case r.Method == http.MethodPost && r.URL.Path == "/basket/compare":
		resp := u.basket
		if resp == nil {
			resp = &domain.BasketResponse{Results: []domain.SupermarketTotal{}}
		}
		_ = json.NewEncoder(w).Encode(resp)
	case r.Method == http.MethodGet && r.URL.Path == "/supermarkets/stats":
		stats := u.stats
		if stats == nil {
			stats = []domain.SupermarketStats{}
		}
		_ = json.NewEncoder(w).Encode(stats)
	case r.Method == http.MethodGet && r.URL.Path == "/users":
		users := u.users
		if users == nil {
			users = []domain.User{}
		}
		_ = json.NewEncoder(w).Encode(users)
	case r.Method == http.MethodGet && r.URL.Path == "/health":
		_ = json.NewEncoder(w).Encode(domain.Health{Status: "ok", Message: "API is running"})
	case r.Method == http.MethodGet && r.URL.Path == "/products":
		u.mu.Lock()
		var out []domain.Product
		for _, p := range u.products {
			out = append(out, p)
		}
		u.mu.Unlock()
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		if out == nil {
			out = []domain.Product{}
		}
		_ = json.NewEncoder(w).Encode(out)
	case r.Method == http.MethodPost && r.URL.Path == "/products":
		var p domain.Product
		_ = json.NewDecoder(r.Body).Decode(&p)
		u.mu.Lock()
		p.ID = u.nextID
		u.nextID++
		u.products[p.ID] = p
		u.mu.Unlock()
		_ = json.NewEncoder(w).Encode(p)
	case strings.HasPrefix(r.URL.Path, "/products/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/products/"))
		u.mu.Lock()
		p, ok := u.products[id]
		u.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Product not found"}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(p)
		case http.MethodPut:
			var in domain.Product
			_ = json.NewDecoder(r.Body).Decode(&in)
			in.ID = id
			u.mu.Lock()
			u.products[id] = in
			u.mu.Unlock()
			_ = json.NewEncoder(w).Encode(in)
		case http.MethodDelete:
			u.mu.Lock()
			delete(u.products, id)
			u.mu.Unlock()
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		}
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}
}

// console wires the app exactly like cmd/console does, against the stub.
func console(t *testing.T, api *upstream) (*fiber.App, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	store, err := session.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	sess := session.New(store)
	client := catalog.New(srv.URL, sess)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if u := sess.User(); u != nil {
			c.Locals("user", u)
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(client, sess)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/new", deps.ProductHandler.NewForm)
	app.Post("/products", deps.ProductHandler.Create)
	app.Post("/products/update", deps.ProductHandler.Update)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Get("/products/:id/edit", deps.ProductHandler.EditForm)
	app.Get("/products/:id/delete", deps.ProductHandler.ConfirmDelete)
	app.Post("/products/:id/delete", deps.ProductHandler.Delete)
	app.Get("/compare", deps.CompareHandler.Barcode)
	app.Get("/basket", deps.CompareHandler.BasketForm)
	app.Post("/basket", deps.CompareHandler.Basket)
	app.Get("/stats", deps.InfoHandler.Stats)
	app.Get("/users", deps.InfoHandler.Users)
	app.Get("/health", deps.InfoHandler.Health)
	app.Get("/session", deps.AuthHandler.Page)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	return app, sess
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// csrfToken fetches a fresh token from a form page. The basket form never
// talks to the upstream, so call-count assertions stay undisturbed.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := get(t, app, "/basket")
	for _, c := range resp.Cookies() {
		if c.Name == "csrf_" {
			return c.Value
		}
	}
	t.Fatal("csrf cookie missing")
	return ""
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	tok := csrfToken(t, app)
	form.Set("csrf", tok)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func login(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := postForm(t, app, "/login", url.Values{"email": {"aru@example.com"}, "password": {"pw"}})
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("login: expected redirect, got %d", resp.StatusCode)
	}
}

func seedProduct(api *upstream, id int, name string, owner int) {
	api.seed(domain.Product{ID: id, Name: name, Price: 100, Stock: 1, CategoryID: 1, OwnerID: owner})
}
