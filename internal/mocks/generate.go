// Package mocks provides mock implementations for testing the portal backend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// port interfaces. The mocks are generated using go:generate directives and
// provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	source := mocks.NewMockDocumentSource(ctrl)
//	source.EXPECT().ListDocuments(gomock.Any()).Return(docs, nil)
package mocks

// Generate mock for DocumentSource interface from internal/ports package.
// This creates MockDocumentSource with methods for all DocumentSource interface methods:
// ListDocuments, ListFolders, ListFolderDocuments
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=document_source_mock.go github.com/moses-automall/intranet-api/internal/ports DocumentSource
