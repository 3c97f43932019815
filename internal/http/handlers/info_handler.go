package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/view"
)

type InfoHandler struct {
	API *catalog.Client
}

// GET /stats
func (h *InfoHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.API.SupermarketStats(c.UserContext())
	if err != nil {
		log.Error(c, "stats.fail", err, nil)
		return renderError(c, "stats", err)
	}
	t := view.Stats(stats)
	return render(c, "stats", "stats", fiber.Map{"Table": t})
}

// GET /users
func (h *InfoHandler) Users(c *fiber.Ctx) error {
	users, err := h.API.Users(c.UserContext())
	if err != nil {
		log.Error(c, "users.fail", err, nil)
		return renderError(c, "users", err)
	}
	return render(c, "users", "users", fiber.Map{"Users": users, "Empty": len(users) == 0, "Total": len(users)})
}

// GET /health
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	health, err := h.API.Health(c.UserContext())
	if err != nil {
		log.Error(c, "health.fail", err, nil)
		return renderError(c, "health", err)
	}
	panel := view.HealthView(health, time.Now())
	return render(c, "health", "health", fiber.Map{"Panel": panel})
}
