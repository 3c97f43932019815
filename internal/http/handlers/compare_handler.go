package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/validate"
	"github.com/gTurboflex/supermarket-console/internal/view"
)

type CompareHandler struct {
	API *catalog.Client
}

// GET /compare shows the barcode form; with ?barcode= it also runs the
// comparison and renders the offer table.
func (h *CompareHandler) Barcode(c *fiber.Ctx) error {
	raw := c.Query("barcode")
	if raw == "" {
		return render(c, "compare", "compare", nil)
	}
	barcode, err := validate.Barcode(raw)
	if err != nil {
		return renderNotice(c, "compare", err.Error())
	}
	resp, err := h.API.CompareBarcode(c.UserContext(), barcode)
	if err != nil {
		log.Error(c, "compare.barcode.fail", err, map[string]any{"barcode": barcode})
		return renderError(c, "compare", err)
	}
	t := view.Compare(resp)
	return render(c, "compare", "compare", fiber.Map{"Table": t, "Barcode": barcode})
}

// GET /basket
func (h *CompareHandler) BasketForm(c *fiber.Ctx) error {
	return render(c, "basket", "basket", nil)
}

// POST /basket parses the freeform JSON items first; invalid input renders
// the notice and performs no upstream request.
func (h *CompareHandler) Basket(c *fiber.Ctx) error {
	raw := c.FormValue("items")
	items, err := validate.BasketItems(raw)
	if err != nil {
		log.Security(c, "compare.basket.invalid", nil)
		return renderNotice(c, "basket", err.Error())
	}
	resp, err := h.API.CompareBasket(c.UserContext(), items)
	if err != nil {
		log.Error(c, "compare.basket.fail", err, map[string]any{"items": len(items)})
		return renderError(c, "basket", err)
	}
	t := view.Basket(resp)
	return render(c, "basket", "basket", fiber.Map{"Table": t, "Raw": raw})
}
