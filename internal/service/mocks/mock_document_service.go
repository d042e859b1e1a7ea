package mocks

import (
	"context"
	"io"
	"time"

	"docgen/internal/document"
	"docgen/internal/model"
	"docgen/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockDocumentService is a testify mock of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

var _ service.DocumentService = (*MockDocumentService)(nil)

func (m *MockDocumentService) Generate(ctx context.Context, d document.Descriptor, mdl any) (*service.Rendered, error) {
	args := m.Called(ctx, d, mdl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Rendered), args.Error(1)
}

func (m *MockDocumentService) Archive(ctx context.Context, d document.Descriptor, mdl any) (*model.Document, error) {
	args := m.Called(ctx, d, mdl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Open(ctx context.Context, docType, id string) (io.ReadCloser, *model.Document, error) {
	args := m.Called(ctx, docType, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Document), args.Error(2)
}

func (m *MockDocumentService) Link(ctx context.Context, doc *model.Document, expiry time.Duration) (string, error) {
	args := m.Called(ctx, doc, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, docType string, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, docType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
