package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/session"
)

type AuthHandler struct {
	API     *catalog.Client
	Session *session.Session
}

// GET /session
func (h *AuthHandler) Page(c *fiber.Ctx) error {
	data := fiber.Map{}
	if h.Session.Authenticated() {
		// Profile as the API sees it; a stale token surfaces here as a 401
		// that clears the session.
		if me, err := h.API.Me(c.UserContext()); err == nil {
			data["Me"] = me
		}
	}
	return render(c, "session", "session", data)
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "missing_fields"})
		return renderNotice(c, "session", "Email and password are required")
	}
	resp, err := h.API.Login(c.UserContext(), email, password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return renderError(c, "session", err)
	}
	log.Audit(c, "auth.login.success", map[string]any{"email": email, "user_id": resp.User.ID})
	return c.Redirect("/products")
}

// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if name == "" || email == "" || password == "" {
		log.Security(c, "auth.register.fail", map[string]any{"reason": "missing_fields"})
		return renderNotice(c, "session", "Name, email and password are required")
	}
	resp, err := h.API.Register(c.UserContext(), name, email, password)
	if err != nil {
		log.Security(c, "auth.register.fail", map[string]any{"email": email})
		return renderError(c, "session", err)
	}
	log.Audit(c, "auth.register.success", map[string]any{"email": email, "user_id": resp.User.ID})
	return c.Redirect("/products")
}

// POST /logout drops the session (memory and durable store) and any
// in-progress edit, then lands on the logged-out product list.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Session.Clear(); err != nil {
		log.Error(c, "auth.logout.fail", err, nil)
	}
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/products")
}
