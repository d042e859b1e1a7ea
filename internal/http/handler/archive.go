package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docgen/internal/apperr"
	"docgen/internal/service"
)

// ListDocuments lists archived documents with limit & offset and an optional
// type filter.
//
// @Summary  List archived documents
// @Produce  json
// @Param    type   query string false "document type slug"
// @Param    limit  query int    false "page size"  default(10)
// @Param    offset query int    false "page start" default(0)
// @Success  200 {object} service.DocumentListResult
// @Router   /api/documents [get]
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return apperr.InvalidArgument("invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return apperr.InvalidArgument("invalid offset")
		}

		res, err := docSvc.List(c.UserContext(), c.Query("type"), limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// GetDocument returns the metadata of an archived document.
//
// @Summary  Archived document metadata
// @Produce  json
// @Param    id path string true "document id"
// @Success  200 {object} model.Document
// @Failure  404 {object} errorPayload
// @Router   /api/documents/{id} [get]
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return errInvalidID
		}
		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes an archived document from storage and the database.
//
// @Summary  Delete archived document
// @Param    id path string true "document id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/documents/{id} [delete]
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return errInvalidID
		}
		if err := docSvc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
