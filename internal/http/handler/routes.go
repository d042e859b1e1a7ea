package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "docgen/docs"
	"docgen/internal/document"
	"docgen/internal/service"
)

// Deps are the collaborators the routes are built from. DB and Gatherer may be nil.
type Deps struct {
	DB       *sql.DB
	Service  service.DocumentService
	Registry *document.Registry
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", LivenessProbe())
	app.Get("/readyz", HealthCheck(deps.DB))
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Host stays empty in the generated docs so the UI resolves the API
	// against whatever address served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/reports/:type", RedirectReport(deps.Registry))

	api := app.Group("/api")
	api.Get("/document-types", ListDocumentTypes(deps.Registry))
	api.Get("/documents", ListDocuments(deps.Service))
	api.Get("/documents/:id", GetDocument(deps.Service))
	api.Delete("/documents/:id", DeleteDocument(deps.Service))

	for _, d := range deps.Registry.All() {
		registerDocument(api.Group("/"+d.Slug()), d, deps)
	}
}

// registerDocument mounts the routes of one document type. Static paths go
// before /:id so they are matched first.
func registerDocument(r fiber.Router, d document.Descriptor, deps Deps) {
	r.Get("/sample", SamplePDF(d, deps.Service))
	r.Get("/sample/json", SampleJSON(d))
	for _, v := range d.Variants() {
		r.Get("/"+v.Path, VariantHandler(d, v, deps.Service))
	}
	if d.SampleOnly() {
		return
	}

	r.Post("/", GeneratePDF(d, deps.Service))
	r.Post("/validate", ValidateModel(d))
	r.Post("/archive", ArchivePDF(d, deps.Service, deps.Logger))
	r.Get("/:id", DownloadArchived(d, deps.Service))
}
