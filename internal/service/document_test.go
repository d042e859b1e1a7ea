package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"docgen/internal/apperr"
	"docgen/internal/document"
	"docgen/internal/model"
	"docgen/internal/render"
	"docgen/internal/repository"
	repoMocks "docgen/internal/repository/mocks"
	"docgen/internal/sample"
	"docgen/internal/storage"
	storeMocks "docgen/internal/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2024, time.June, 9, 10, 0, 0, 0, time.UTC)

// brokenDescriptor renders nothing but an error.
type brokenDescriptor struct {
	document.Descriptor
}

func (brokenDescriptor) Render(any, render.Options) ([]byte, error) {
	return nil, errors.New("font table corrupt")
}

func newTestService(t *testing.T, store storage.Storage, repo repository.DocumentRepository) (DocumentService, *Metrics, *observer.ObservedLogs) {
	t.Helper()
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewDocumentService(store, repo, Options{
		Logger:  zap.New(core),
		Metrics: metrics,
		Now:     func() time.Time { return fixedNow },
	})
	return svc, metrics, logs
}

func TestDocumentService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and records success", func(t *testing.T) {
		svc, metrics, logs := newTestService(t, nil, nil)

		out, err := svc.Generate(ctx, document.TaxInvoice, sample.TaxInvoice())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(out.Content), "%PDF-"))
		assert.Equal(t, "tax-invoice-INV-2024-0042.pdf", out.Filename)
		assert.Equal(t, "INV-2024-0042", out.Reference)
		assert.Equal(t, fixedNow, out.GeneratedAt)

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.generated.WithLabelValues("tax-invoice", OutcomeSuccess)))
		entries := logs.FilterMessage("pdf_generated").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "tax-invoice", fields["type"])
		assert.Equal(t, "INV-2024-0042", fields["reference"])
		assert.Equal(t, true, fields["success"])
		assert.Contains(t, fields, "duration_ms")
	})

	t.Run("render failure is unclassified", func(t *testing.T) {
		svc, metrics, logs := newTestService(t, nil, nil)

		out, err := svc.Generate(ctx, brokenDescriptor{document.Receipt}, sample.Receipt())
		assert.Nil(t, out)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnclassified, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "render receipt: font table corrupt")

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.generated.WithLabelValues("receipt", OutcomeFailure)))
		entries := logs.FilterMessage("pdf_generated").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, false, entries[0].ContextMap()["success"])
	})

	t.Run("nil model", func(t *testing.T) {
		svc, _, _ := newTestService(t, nil, nil)
		_, err := svc.Generate(ctx, document.Receipt, nil)
		assert.ErrorIs(t, err, ErrModelRequired)
		assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	})

	t.Run("works without metrics or logger", func(t *testing.T) {
		svc := NewDocumentService(nil, nil, Options{})
		out, err := svc.Generate(ctx, document.ProductCatalog, sample.ProductCatalog())
		require.NoError(t, err)
		assert.NotEmpty(t, out.Content)
	})
}

func TestDocumentService_Archive(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository)
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/receipt/") && strings.HasSuffix(key, ".pdf")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == ContentTypePDF && opt.Size > 0 &&
						opt.Metadata["document-type"] == "receipt" &&
						opt.Metadata["filename"] == "receipt-RCT-2024-0117.pdf"
				})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.DocumentType == "receipt" &&
						doc.Reference == "RCT-2024-0117" &&
						doc.StoragePath == "documents/receipt/"+doc.ID+".pdf" &&
						doc.CreatedAt.Equal(fixedNow)
				})).Return(func(ctx context.Context, doc *model.Document) *model.Document {
					return doc
				}, nil)
			},
		},
		{
			name: "storage error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name: "repository error with successful rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/receipt/")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name: "repository error with failed rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc, _, _ := newTestService(t, mStore, mRepo)

			tt.setupMocks(mStore, mRepo)

			doc, err := svc.Archive(ctx, document.Receipt, sample.Receipt())

			if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, "receipt-RCT-2024-0117.pdf", doc.Filename)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_ArchiveDisabled(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(nil, nil, Options{})

	_, err := svc.Archive(ctx, document.Receipt, sample.Receipt())
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	_, err = svc.List(ctx, "", 10, 0)
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	_, _, err = svc.Open(ctx, "receipt", "id")
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	_, err = svc.Link(ctx, &model.Document{}, time.Minute)
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	err = svc.Delete(ctx, "id")
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	c := apperr.Classify(err)
	assert.Equal(t, 400, c.Status)
	assert.Equal(t, "document archive is not configured", c.Message)
}

func TestDocumentService_Open(t *testing.T) {
	ctx := context.Background()
	stored := &model.Document{ID: "doc-1", DocumentType: "receipt", StoragePath: "documents/receipt/doc-1.pdf"}

	tests := []struct {
		name       string
		docType    string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:    "happy path",
			docType: "receipt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(stored, nil)
				mStore.On("Get", ctx, "documents/receipt/doc-1.pdf").
					Return(io.NopCloser(strings.NewReader("%PDF-1.3")), storage.ObjectInfo{}, nil)
			},
		},
		{
			name:    "type mismatch is not found",
			docType: "tax-invoice",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(stored, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "missing record",
			docType: "receipt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "missing object",
			docType: "receipt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(stored, nil)
				mStore.On("Get", ctx, stored.StoragePath).
					Return(nil, storage.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "storage failure",
			docType: "receipt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(stored, nil)
				mStore.On("Get", ctx, stored.StoragePath).
					Return(nil, storage.ObjectInfo{}, errors.New("connection refused"))
			},
			wantErrMsg: "open storage: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc, _, _ := newTestService(t, mStore, mRepo)

			tt.setupMocks(mStore, mRepo)

			rc, doc, err := svc.Open(ctx, tt.docType, "doc-1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rc)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
				assert.Equal(t, apperr.KindUnclassified, apperr.KindOf(err))
			default:
				require.NoError(t, err)
				defer rc.Close()
				assert.Equal(t, "doc-1", doc.ID)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Link(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockDocumentRepository)
	svc, _, _ := newTestService(t, mStore, mRepo)

	doc := &model.Document{ID: "doc-1", StoragePath: "documents/receipt/doc-1.pdf"}
	mStore.On("PresignGet", ctx, doc.StoragePath, 15*time.Minute).Return("https://minio.local/signed", nil)

	url, err := svc.Link(ctx, doc, 15*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, "https://minio.local/signed", url)

	_, err = svc.Link(ctx, nil, time.Minute)
	assert.ErrorIs(t, err, ErrNotFound)
	mStore.AssertExpectations(t)
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		docType    string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    bool
		checkRes   func(t *testing.T, res *DocumentListResult)
	}{
		{
			name:    "happy path",
			docType: "receipt",
			limit:   10,
			offset:  0,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0, DocumentType: "receipt"}).
					Return(&repository.PageResult[model.Document]{
						Items: []model.Document{{ID: "1"}, {ID: "2"}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *DocumentListResult) {
				assert.Equal(t, 2, len(res.Items))
				assert.Equal(t, 2, res.Total)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Document]{Items: []model.Document{}, Total: 0}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc, _, _ := newTestService(t, new(storeMocks.MockStorage), mRepo)

			tt.setupMocks(mRepo)

			res, err := svc.List(ctx, tt.docType, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Document{ID: "valid-id"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   "error-id",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "error-id").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc, _, _ := newTestService(t, new(storeMocks.MockStorage), mRepo)

			tt.setupMocks(mRepo)

			doc, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, tt.id, doc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Document{ID: "valid-id", StoragePath: "path/to/obj"}, nil)
				mStore.On("Delete", ctx, "path/to/obj").Return(nil)
				mRepo.On("Delete", ctx, "valid-id").Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error",
			id:   "storage-fail-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "storage-fail-id").Return(&model.Document{ID: "id", StoragePath: "path"}, nil)
				mStore.On("Delete", ctx, "path").Return(errors.New("storage fail"))
			},
			wantErr: errors.New("delete storage: storage fail"),
		},
		{
			name: "repository delete error",
			id:   "repo-fail-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "repo-fail-id").Return(&model.Document{ID: "id", StoragePath: "path"}, nil)
				mStore.On("Delete", ctx, "path").Return(nil)
				mRepo.On("Delete", ctx, "repo-fail-id").Return(errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc, _, _ := newTestService(t, mStore, mRepo)

			tt.setupMocks(mStore, mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}
