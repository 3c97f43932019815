package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
)

// render injects the logged-in user (placed in Locals by the session
// middleware) so every page can gate its affordances and show the nav state.
// Tab is passed explicitly by each handler; no ambient tab state exists.
func render(c *fiber.Ctx, tmpl, tab string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Tab"] = tab
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	// Pick up the token the CSRF middleware put into Locals, falling back to
	// the cookie when Locals wasn't populated.
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// renderError shows the generic error panel for a failed action. API errors
// keep their upstream status; anything else surfaces as a bad gateway.
func renderError(c *fiber.Ctx, tab string, err error) error {
	status := fiber.StatusBadGateway
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	return c.Status(status).Render("message", fiber.Map{
		"Tab":   tab,
		"Class": "error",
		"Text":  "Error: " + err.Error(),
		"User":  c.Locals("user"),
	})
}

// renderNotice is the blocking validation surface: shown before any upstream
// call is made.
func renderNotice(c *fiber.Ctx, tab, text string) error {
	return c.Status(fiber.StatusBadRequest).Render("message", fiber.Map{
		"Tab":   tab,
		"Class": "notice",
		"Text":  text,
		"User":  c.Locals("user"),
	})
}

// renderSuccess shows the success banner, then sends the operator back to
// refreshURL after a short delay so the message is read before the list
// reloads.
func renderSuccess(c *fiber.Ctx, tab, text, refreshURL string) error {
	return render(c, "success", tab, fiber.Map{
		"Text":       text,
		"RefreshURL": refreshURL,
	})
}
