package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"docgen/internal/service"
)

// Response headers attached to every PDF.
const (
	HeaderGeneratedAt   = "X-Generated-At"
	HeaderContentLength = "X-Content-Length"
)

// SuccessEnvelope is the body of a successful non-file response.
type SuccessEnvelope struct {
	Success        bool      `json:"success"`
	DocumentType   string    `json:"documentType"`
	DocumentID     string    `json:"documentId"`
	GeneratedAt    time.Time `json:"generatedAt"`
	DownloadURL    string    `json:"downloadUrl"`
	AdditionalData any       `json:"additionalData,omitempty"`
}

// DownloadURL is the path an archived document is served from.
func DownloadURL(docType, id string) string {
	return "/api/" + strings.ToLower(docType) + "/" + id
}

// SendSuccess writes a SuccessEnvelope for docType and id.
func SendSuccess(c *fiber.Ctx, status int, docType, id string, additional any) error {
	return c.Status(status).JSON(SuccessEnvelope{
		Success:        true,
		DocumentType:   docType,
		DocumentID:     id,
		GeneratedAt:    time.Now().UTC(),
		DownloadURL:    DownloadURL(docType, id),
		AdditionalData: additional,
	})
}

// SendPDF writes content as a PDF download, or for in-browser viewing when
// inline is set.
func SendPDF(c *fiber.Ctx, content []byte, filename string, inline bool) error {
	setPDFHeaders(c, filename, inline, len(content), time.Now())
	return c.Status(fiber.StatusOK).Send(content)
}

func setPDFHeaders(c *fiber.Ctx, filename string, inline bool, size int, at time.Time) {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, service.ContentTypePDF)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, filename))
	c.Set(HeaderGeneratedAt, at.UTC().Format(time.RFC3339))
	if size >= 0 {
		c.Set(HeaderContentLength, strconv.Itoa(size))
	}
}

func wantsInline(c *fiber.Ctx) bool {
	return c.QueryBool("inline", false)
}
