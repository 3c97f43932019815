package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/config"
	"github.com/gTurboflex/supermarket-console/internal/http/handlers"
	applog "github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/session"
)

func main() {
	cfg := config.Load(os.Args[1:])

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Durable session store; the operator survives console restarts.
	store, err := session.OpenStore(cfg.SessionDB)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.New(store)
	if err := sess.Load(); err != nil {
		log.Fatal(err)
	}

	api := catalog.New(cfg.APIBaseURL, sess)

	engine := html.New(cfg.TplDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "console.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("message", fiber.Map{
				"Class": "error",
				"Text":  "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the operator to the context for templates and affordance gating.
	app.Use(func(c *fiber.Ctx) error {
		if u := sess.User(); u != nil {
			c.Locals("user", u)
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("message", fiber.Map{
				"Class": "error",
				"Text":  "Security check failed. Please refresh and try again.",
			})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Static("/static", "./web/static")

	deps := handlers.NewDeps(api, sess)

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/products") })

	// Products
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/new", deps.ProductHandler.NewForm)
	app.Post("/products", deps.ProductHandler.Create)
	app.Post("/products/update", deps.ProductHandler.Update)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Get("/products/:id/edit", deps.ProductHandler.EditForm)
	app.Get("/products/:id/delete", deps.ProductHandler.ConfirmDelete)
	app.Post("/products/:id/delete", deps.ProductHandler.Delete)

	// Comparisons
	app.Get("/compare", deps.CompareHandler.Barcode)
	app.Get("/basket", deps.CompareHandler.BasketForm)
	app.Post("/basket", deps.CompareHandler.Basket)

	// Supermarkets
	app.Get("/supermarkets", deps.SupermarketHandler.List)
	app.Get("/supermarkets/new", deps.SupermarketHandler.NewForm)
	app.Post("/supermarkets", deps.SupermarketHandler.Create)
	app.Get("/supermarkets/:id/edit", deps.SupermarketHandler.EditForm)
	app.Post("/supermarkets/:id", deps.SupermarketHandler.Update)
	app.Get("/supermarkets/:id/delete", deps.SupermarketHandler.ConfirmDelete)
	app.Post("/supermarkets/:id/delete", deps.SupermarketHandler.Delete)

	// Stats, users, health
	app.Get("/stats", deps.InfoHandler.Stats)
	app.Get("/users", deps.InfoHandler.Users)
	app.Get("/health", deps.InfoHandler.Health)

	// Session (credential posts throttled)
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.auth.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("message", fiber.Map{
				"Tab":   "session",
				"Class": "error",
				"Text":  "Too many attempts. Please try again later.",
			})
		},
	})
	app.Get("/session", deps.AuthHandler.Page)
	app.Post("/login", authLimiter, deps.AuthHandler.Login)
	app.Post("/register", authLimiter, deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("message", fiber.Map{"Class": "error", "Text": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
