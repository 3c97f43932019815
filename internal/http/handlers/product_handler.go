package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/session"
	"github.com/gTurboflex/supermarket-console/internal/validate"
	"github.com/gTurboflex/supermarket-console/internal/view"
)

type ProductHandler struct {
	API     *catalog.Client
	Session *session.Session
}

// GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.API.Products(c.UserContext())
	if err != nil {
		log.Error(c, "products.list.fail", err, nil)
		return renderError(c, "products", err)
	}
	t := view.Products(products, h.Session.User())
	return render(c, "products", "products", fiber.Map{"Table": t})
}

// GET /products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "products", "Invalid product id")
	}
	p, err := h.API.Product(c.UserContext(), id)
	if err != nil {
		log.Error(c, "products.detail.fail", err, map[string]any{"product_id": id})
		return renderError(c, "products", err)
	}
	return render(c, "product_detail", "products", fiber.Map{"Dump": view.ProductDump(p), "ID": p.ID})
}

// GET /products/new
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "product_form", "products", fiber.Map{
		"Action": "/products",
		"Title":  "Create Product",
	})
}

// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, err := validate.ProductForm(
		c.FormValue("name"), c.FormValue("price"), c.FormValue("stock"),
		c.FormValue("barcode"), c.FormValue("image"),
		c.FormValue("category_id"), c.FormValue("supermarket_id"),
	)
	if err != nil {
		log.Security(c, "products.create.invalid", nil)
		return renderNotice(c, "products", err.Error())
	}
	created, err := h.API.CreateProduct(c.UserContext(), p)
	if err != nil {
		log.Error(c, "products.create.fail", err, nil)
		return renderError(c, "products", err)
	}
	log.Audit(c, "products.create", map[string]any{"product_id": created.ID})
	return renderSuccess(c, "products",
		fmt.Sprintf("Product created successfully with ID: %d", created.ID), "/products")
}

// GET /products/:id/edit fetches the current record, populates the form and
// remembers the target. A second edit overwrites the remembered id; the
// first in-progress edit is abandoned.
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "products", "Invalid product id")
	}
	p, err := h.API.Product(c.UserContext(), id)
	if err != nil {
		log.Error(c, "products.edit.fetch.fail", err, map[string]any{"product_id": id})
		return renderError(c, "products", err)
	}
	h.Session.SetEditTarget(p.ID)
	return render(c, "product_form", "products", fiber.Map{
		"Action": "/products/update",
		"Title":  fmt.Sprintf("Edit Product %d", p.ID),
		"P":      p,
	})
}

// POST /products/update submits against the remembered edit target; without
// one it aborts before any upstream call.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := h.Session.EditTarget()
	if id == 0 {
		log.Security(c, "products.update.notarget", nil)
		return renderNotice(c, "products", validate.ErrNoEditTarget.Error())
	}
	p, err := validate.ProductForm(
		c.FormValue("name"), c.FormValue("price"), c.FormValue("stock"),
		c.FormValue("barcode"), c.FormValue("image"),
		c.FormValue("category_id"), c.FormValue("supermarket_id"),
	)
	if err != nil {
		log.Security(c, "products.update.invalid", map[string]any{"product_id": id})
		return renderNotice(c, "products", err.Error())
	}
	if _, err := h.API.UpdateProduct(c.UserContext(), id, p); err != nil {
		log.Error(c, "products.update.fail", err, map[string]any{"product_id": id})
		return renderError(c, "products", err)
	}
	h.Session.ClearEditTarget()
	log.Audit(c, "products.update", map[string]any{"product_id": id})
	return renderSuccess(c, "products",
		fmt.Sprintf("Product %d updated successfully", id), "/products")
}

// GET /products/:id/delete renders the confirmation step; nothing is called
// upstream until the operator confirms.
func (h *ProductHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "products", "Invalid product id")
	}
	return render(c, "confirm_delete", "products", fiber.Map{
		"Text":   fmt.Sprintf("Are you sure you want to delete product %d?", id),
		"Action": fmt.Sprintf("/products/%d/delete", id),
		"Cancel": "/products",
	})
}

// POST /products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderNotice(c, "products", "Invalid product id")
	}
	if err := h.API.DeleteProduct(c.UserContext(), id); err != nil {
		log.Error(c, "products.delete.fail", err, map[string]any{"product_id": id})
		return renderError(c, "products", err)
	}
	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return renderSuccess(c, "products",
		fmt.Sprintf("Product %d deleted successfully", id), "/products")
}
