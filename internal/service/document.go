package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"docgen/internal/apperr"
	"docgen/internal/document"
	"docgen/internal/model"
	"docgen/internal/render"
	"docgen/internal/repository"
	"docgen/internal/storage"
)

// ContentTypePDF is the MIME type of every generated document.
const ContentTypePDF = "application/pdf"

var (
	ErrIDRequired      = apperr.InvalidArgument("id is required")
	ErrNotFound        = apperr.NotFound("document not found")
	ErrModelRequired   = apperr.InvalidArgument(document.MsgNullModel)
	ErrArchiveDisabled = apperr.InvalidOperation("document archive is not configured")
)

var tracer = otel.Tracer("docgen/internal/service")

// Rendered is a generated PDF ready to be sent.
type Rendered struct {
	Content     []byte
	Filename    string
	Reference   string
	GeneratedAt time.Time
}

// DocumentListResult is the service-level DTO for paginated archived documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService renders documents and manages the optional archive.
type DocumentService interface {
	// Generate renders model with the descriptor. It does not validate; callers
	// run the descriptor's rules first.
	Generate(ctx context.Context, d document.Descriptor, m any) (*Rendered, error)

	// Archive renders the model, uploads it to object storage and saves its
	// metadata, removing the object again if the metadata write fails.
	Archive(ctx context.Context, d document.Descriptor, m any) (*model.Document, error)

	// Open streams an archived PDF. The record must belong to docType.
	Open(ctx context.Context, docType, id string) (io.ReadCloser, *model.Document, error)

	// Link returns a time-limited direct download URL for an archived PDF.
	Link(ctx context.Context, doc *model.Document, expiry time.Duration) (string, error)

	// List returns archived documents using limit/offset and a total count.
	// An empty docType lists every type.
	List(ctx context.Context, docType string, limit, offset int) (*DocumentListResult, error)

	// Get returns a single archived document record by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes an archived document from both storage and repository.
	Delete(ctx context.Context, id string) error
}

// Options configure a DocumentService. Zero values are usable.
type Options struct {
	Render  render.Options
	Logger  *zap.Logger
	Metrics *Metrics
	// Now is the clock used for filenames and timestamps.
	Now func() time.Time
}

type documentService struct {
	store   storage.Storage
	repo    repository.DocumentRepository
	render  render.Options
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time
}

// NewDocumentService constructs a DocumentService. store and repo may be nil,
// in which case archive operations fail with ErrArchiveDisabled.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, opt Options) DocumentService {
	s := &documentService{
		store:   store,
		repo:    repo,
		render:  opt.Render,
		log:     opt.Logger,
		metrics: opt.Metrics,
		now:     opt.Now,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *documentService) archiveEnabled() bool {
	return s.store != nil && s.repo != nil
}

func (s *documentService) Generate(ctx context.Context, d document.Descriptor, m any) (*Rendered, error) {
	if d == nil || m == nil {
		return nil, ErrModelRequired
	}

	_, span := tracer.Start(ctx, "document.generate", trace.WithAttributes(
		attribute.String("document.type", d.Slug()),
	))
	defer span.End()

	start := time.Now()
	content, err := d.Render(m, s.render)
	elapsed := time.Since(start)
	ref := d.Reference(m)

	s.metrics.observe(d.Slug(), elapsed, err)
	fields := []zap.Field{
		zap.String("type", d.Slug()),
		zap.String("reference", ref),
		zap.Bool("success", err == nil),
		zap.Int64("duration_ms", elapsed.Milliseconds()),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		s.log.Error("pdf_generated", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("render %s: %w", d.Slug(), err)
	}

	span.SetAttributes(attribute.Int("document.size", len(content)))
	s.log.Info("pdf_generated", append(fields, zap.Int("size", len(content)))...)

	now := s.now()
	return &Rendered{
		Content:     content,
		Filename:    d.Filename(m, now),
		Reference:   ref,
		GeneratedAt: now.UTC(),
	}, nil
}

func (s *documentService) Archive(ctx context.Context, d document.Descriptor, m any) (*model.Document, error) {
	if !s.archiveEnabled() {
		return nil, ErrArchiveDisabled
	}

	out, err := s.Generate(ctx, d, m)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := path.Join("documents", d.Slug(), id+".pdf")

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(out.Content), storage.PutObjectOptions{
		Size:        int64(len(out.Content)),
		ContentType: ContentTypePDF,
		Metadata: map[string]string{
			"document-type": d.Slug(),
			"filename":      out.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:           id,
		DocumentType: d.Slug(),
		Reference:    out.Reference,
		Filename:     out.Filename,
		StoragePath:  objInfo.Key,
		Size:         objInfo.Size,
		ContentType:  ContentTypePDF,
		CreatedAt:    out.GeneratedAt,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.log.Info("pdf_archived",
		zap.String("type", d.Slug()),
		zap.String("document_id", stored.ID),
		zap.String("storage_path", stored.StoragePath),
	)
	return stored, nil
}

func (s *documentService) Open(ctx context.Context, docType, id string) (io.ReadCloser, *model.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if doc.DocumentType != docType {
		return nil, nil, ErrNotFound
	}

	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return rc, doc, nil
}

func (s *documentService) Link(ctx context.Context, doc *model.Document, expiry time.Duration) (string, error) {
	if !s.archiveEnabled() {
		return "", ErrArchiveDisabled
	}
	if doc == nil {
		return "", ErrNotFound
	}
	return s.store.PresignGet(ctx, doc.StoragePath, expiry)
}

func (s *documentService) List(ctx context.Context, docType string, limit, offset int) (*DocumentListResult, error) {
	if !s.archiveEnabled() {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset, DocumentType: docType})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if !s.archiveEnabled() {
		return nil, ErrArchiveDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes the object first; if that fails the record is kept so the
// object stays reachable.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
