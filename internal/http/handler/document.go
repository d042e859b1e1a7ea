package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen/internal/apperr"
	"docgen/internal/document"
	"docgen/internal/http/middleware"
	"docgen/internal/service"
)

// LinkExpiry is how long a presigned archive link stays valid.
const LinkExpiry = 15 * time.Minute

// Messages of the validate endpoint.
const (
	MsgModelValid       = "Model is valid"
	MsgValidationFailed = "Validation failed"
)

var errInvalidID = apperr.InvalidArgument("invalid id format")

// ValidationResponse is the body of POST /api/{type}/validate.
type ValidationResponse struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message"`
	Messages []string `json:"messages"`
}

// SamplePDF serves the fixed sample of d as a PDF.
//
// @Summary  Sample PDF
// @Produce  application/pdf
// @Param    type    path  string true  "document type slug"
// @Param    inline  query bool   false "display in browser"
// @Success  200
// @Router   /api/{type}/sample [get]
func SamplePDF(d document.Descriptor, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Generate(c.UserContext(), d, d.Sample())
		if err != nil {
			return err
		}
		return SendPDF(c, out.Content, d.SampleFilename(), wantsInline(c))
	}
}

// SampleJSON serves the fixed sample model of d as JSON, ready to be edited
// and posted back.
//
// @Summary  Sample model
// @Produce  json
// @Param    type path string true "document type slug"
// @Success  200
// @Router   /api/{type}/sample/json [get]
func SampleJSON(d document.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(d.Sample())
	}
}

// VariantHandler serves an extra sample of d.
func VariantHandler(d document.Descriptor, v document.Variant, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m := v.Model()
		if v.Format == document.FormatJSON {
			return c.JSON(m)
		}
		out, err := svc.Generate(c.UserContext(), d, m)
		if err != nil {
			return err
		}
		return SendPDF(c, out.Content, v.Filename, wantsInline(c))
	}
}

// GeneratePDF renders a posted model. The model is validated first and the
// builder never runs for an invalid one.
//
// @Summary  Generate PDF
// @Accept   json
// @Produce  application/pdf
// @Param    type path string true "document type slug"
// @Success  200
// @Failure  400 {object} errorPayload
// @Router   /api/{type} [post]
func GeneratePDF(d document.Descriptor, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := d.Decode(c.Body())
		if err != nil {
			return err
		}
		if res := d.Validate(m); !res.Valid {
			return writeValidationFailed(c, res.Messages)
		}

		out, err := svc.Generate(c.UserContext(), d, m)
		if err != nil {
			return err
		}
		return SendPDF(c, out.Content, out.Filename, wantsInline(c))
	}
}

// ValidateModel checks a posted model without rendering it.
//
// @Summary  Validate model
// @Accept   json
// @Produce  json
// @Param    type path string true "document type slug"
// @Success  200 {object} ValidationResponse
// @Failure  400 {object} ValidationResponse
// @Router   /api/{type}/validate [post]
func ValidateModel(d document.Descriptor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := d.Decode(c.Body())
		if err != nil {
			return err
		}

		res := d.Validate(m)
		if !res.Valid {
			return c.Status(fiber.StatusBadRequest).JSON(ValidationResponse{
				Valid:    false,
				Message:  MsgValidationFailed,
				Messages: res.Messages,
			})
		}
		return c.JSON(ValidationResponse{Valid: true, Message: MsgModelValid, Messages: res.Messages})
	}
}

// ArchivePDF renders a posted model and stores it, answering with where it
// can be downloaded.
//
// @Summary  Archive PDF
// @Accept   json
// @Produce  json
// @Param    type path string true "document type slug"
// @Success  201 {object} SuccessEnvelope
// @Failure  400 {object} errorPayload
// @Router   /api/{type}/archive [post]
func ArchivePDF(d document.Descriptor, svc service.DocumentService, log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		m, err := d.Decode(c.Body())
		if err != nil {
			return err
		}
		if res := d.Validate(m); !res.Valid {
			return writeValidationFailed(c, res.Messages)
		}

		doc, err := svc.Archive(c.UserContext(), d, m)
		if err != nil {
			return err
		}

		additional := fiber.Map{
			"filename":  doc.Filename,
			"reference": doc.Reference,
			"size":      doc.Size,
		}
		link, err := svc.Link(c.UserContext(), doc, LinkExpiry)
		if err != nil {
			log.Warn("presign_failed",
				zap.String("request_id", middleware.RequestIDFrom(c)),
				zap.String("document_id", doc.ID),
				zap.Error(err),
			)
		} else {
			additional["presignedUrl"] = link
		}
		return SendSuccess(c, fiber.StatusCreated, d.Slug(), doc.ID, additional)
	}
}

// DownloadArchived streams a previously archived PDF of type d.
//
// @Summary  Download archived PDF
// @Produce  application/pdf
// @Param    type path string true "document type slug"
// @Param    id   path string true "document id"
// @Success  200
// @Failure  404 {object} errorPayload
// @Router   /api/{type}/{id} [get]
func DownloadArchived(d document.Descriptor, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return errInvalidID
		}

		rc, doc, err := svc.Open(c.UserContext(), d.Slug(), id)
		if err != nil {
			return err
		}
		setPDFHeaders(c, doc.Filename, wantsInline(c), int(doc.Size), doc.CreatedAt)
		return c.Status(fiber.StatusOK).SendStream(rc, int(doc.Size))
	}
}

// typeInfo describes one document type in GET /api/document-types.
type typeInfo struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	SampleOnly bool     `json:"sampleOnly"`
	Endpoints  []string `json:"endpoints"`
}

// ListDocumentTypes lists every registered document type and its endpoints.
//
// @Summary  Document types
// @Produce  json
// @Success  200
// @Router   /api/document-types [get]
func ListDocumentTypes(reg *document.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types := make([]typeInfo, 0, len(reg.All()))
		for _, d := range reg.All() {
			types = append(types, typeInfo{
				Slug:       d.Slug(),
				Title:      d.Title(),
				SampleOnly: d.SampleOnly(),
				Endpoints:  endpointsFor(d),
			})
		}
		return c.JSON(fiber.Map{"data": types})
	}
}

func endpointsFor(d document.Descriptor) []string {
	base := "/api/" + d.Slug()
	eps := []string{"GET " + base + "/sample", "GET " + base + "/sample/json"}
	for _, v := range d.Variants() {
		eps = append(eps, "GET "+base+"/"+v.Path)
	}
	if d.SampleOnly() {
		return eps
	}
	return append(eps,
		"POST "+base,
		"POST "+base+"/validate",
		"POST "+base+"/archive",
		"GET "+base+"/{id}",
	)
}

// reportAliases maps home page report names onto registered slugs.
var reportAliases = map[string]string{
	"dynamic-report": "dynamic-column-report",
}

// RedirectReport sends the home page "generate report" action to the sample
// endpoint of the chosen type.
func RedirectReport(reg *document.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("type")
		if alias, ok := reportAliases[name]; ok {
			name = alias
		}
		d, ok := reg.Lookup(name)
		if !ok {
			return apperr.NotFound("unknown report type")
		}
		return c.Redirect("/api/"+d.Slug()+"/sample", fiber.StatusFound)
	}
}
