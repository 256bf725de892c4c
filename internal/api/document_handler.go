package api

import (
	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// DocumentHandler serves document CRUD endpoints.
type DocumentHandler struct {
	docSvc domain.DocumentService
}

func NewDocumentHandler(docSvc domain.DocumentService) *DocumentHandler {
	return &DocumentHandler{docSvc: docSvc}
}

// GetDocuments lists all documents.
// GET /api/documents
func (h *DocumentHandler) GetDocuments(c *fiber.Ctx) error {
	docs, err := h.docSvc.ListDocuments(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(docs)
}

// GetDocument fetches one document.
// GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document id"})
	}

	doc, err := h.docSvc.GetDocument(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(doc)
}

// CreateDocument creates a document.
// POST /api/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var doc model.Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if doc.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	if err := h.docSvc.CreateDocument(c.Context(), &doc); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateDocument updates a document.
// PUT /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document id"})
	}

	var doc model.Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if doc.ID != 0 && doc.ID != uint(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Document id mismatch"})
	}
	doc.ID = uint(id)

	if err := h.docSvc.UpdateDocument(c.Context(), &doc); err != nil {
		return handleError(c, err)
	}
	return c.JSON(doc)
}

// DeleteDocument deletes a document.
// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document id"})
	}

	if err := h.docSvc.DeleteDocument(c.Context(), uint(id)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
