package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/domain"
	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/session"
	"github.com/gTurboflex/supermarket-console/internal/validate"
)

type SupermarketHandler struct {
	API     *catalog.Client
	Session *session.Session
}

// isAdmin gates the mutation affordances only; the API enforces the admin
// requirement on its own.
func (h *SupermarketHandler) isAdmin() bool {
	u := h.Session.User()
	return u != nil && u.Role == "admin"
}

// GET /supermarkets
func (h *SupermarketHandler) List(c *fiber.Ctx) error {
	items, err := h.API.Supermarkets(c.UserContext())
	if err != nil {
		log.Error(c, "supermarkets.list.fail", err, nil)
		return renderError(c, "supermarkets", err)
	}
	return render(c, "supermarkets", "supermarkets", fiber.Map{
		"Items": items,
		"Empty": len(items) == 0,
		"Admin": h.isAdmin(),
	})
}

// GET /supermarkets/new
func (h *SupermarketHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "supermarket_form", "supermarkets", fiber.Map{
		"Action": "/supermarkets",
		"Title":  "Create Supermarket",
	})
}

// POST /supermarkets
func (h *SupermarketHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return renderNotice(c, "supermarkets", "Supermarket name is required")
	}
	s := &domain.Supermarket{Name: name, Address: strings.TrimSpace(c.FormValue("address"))}
	created, err := h.API.CreateSupermarket(c.UserContext(), s)
	if err != nil {
		log.Error(c, "supermarkets.create.fail", err, nil)
		return renderError(c, "supermarkets", err)
	}
	log.Audit(c, "supermarkets.create", map[string]any{"supermarket_id": created.ID})
	return renderSuccess(c, "supermarkets",
		fmt.Sprintf("Supermarket created successfully with ID: %d", created.ID), "/supermarkets")
}

// GET /supermarkets/:id/edit
func (h *SupermarketHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "supermarkets", "Invalid supermarket id")
	}
	s, err := h.API.Supermarket(c.UserContext(), id)
	if err != nil {
		log.Error(c, "supermarkets.edit.fetch.fail", err, map[string]any{"supermarket_id": id})
		return renderError(c, "supermarkets", err)
	}
	return render(c, "supermarket_form", "supermarkets", fiber.Map{
		"Action": fmt.Sprintf("/supermarkets/%d", s.ID),
		"Title":  fmt.Sprintf("Edit Supermarket %d", s.ID),
		"S":      s,
	})
}

// POST /supermarkets/:id
func (h *SupermarketHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "supermarkets", "Invalid supermarket id")
	}
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return renderNotice(c, "supermarkets", "Supermarket name is required")
	}
	s := &domain.Supermarket{Name: name, Address: strings.TrimSpace(c.FormValue("address"))}
	if _, err := h.API.UpdateSupermarket(c.UserContext(), id, s); err != nil {
		log.Error(c, "supermarkets.update.fail", err, map[string]any{"supermarket_id": id})
		return renderError(c, "supermarkets", err)
	}
	log.Audit(c, "supermarkets.update", map[string]any{"supermarket_id": id})
	return renderSuccess(c, "supermarkets",
		fmt.Sprintf("Supermarket %d updated successfully", id), "/supermarkets")
}

// GET /supermarkets/:id/delete
func (h *SupermarketHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "supermarkets", "Invalid supermarket id")
	}
	return render(c, "confirm_delete", "supermarkets", fiber.Map{
		"Text":   fmt.Sprintf("Are you sure you want to delete supermarket %d?", id),
		"Action": fmt.Sprintf("/supermarkets/%d/delete", id),
		"Cancel": "/supermarkets",
	})
}

// POST /supermarkets/:id/delete
func (h *SupermarketHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "supermarkets", "Invalid supermarket id")
	}
	if err := h.API.DeleteSupermarket(c.UserContext(), id); err != nil {
		log.Error(c, "supermarkets.delete.fail", err, map[string]any{"supermarket_id": id})
		return renderError(c, "supermarkets", err)
	}
	log.Audit(c, "supermarkets.delete", map[string]any{"supermarket_id": id})
	return renderSuccess(c, "supermarkets",
		fmt.Sprintf("Supermarket %d deleted successfully", id), "/supermarkets")
}
