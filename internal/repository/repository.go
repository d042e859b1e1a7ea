// Package repository contains data access abstractions for archived
// documents. Implementations live in subpackages (e.g. postgres).
package repository

// PageQuery holds limit/offset pagination parameters and an optional
// document type filter.
type PageQuery struct {
	Limit        int
	Offset       int
	DocumentType string
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
