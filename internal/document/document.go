// Package document describes every supported document type as data: how
// its model is decoded, validated, rendered and named. HTTP handlers and the
// CLI drive a single code path from these descriptors.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"docgen/internal/apperr"
	"docgen/internal/render"
	"docgen/internal/validation"
)

// Messages returned when a request body cannot be turned into a model.
const (
	MsgNullModel   = "Model cannot be null"
	MsgInvalidBody = "Invalid request body"
)

// Format is the representation a variant endpoint serves.
type Format int

const (
	FormatPDF Format = iota
	FormatJSON
)

// Variant is an extra sample endpoint under a document type, such as a
// password protected payslip.
type Variant struct {
	Path     string
	Format   Format
	Filename string
	Model    func() any
}

// Descriptor is the type-erased view of a document type.
// Models passed in must be values returned by Sample or Decode of the same descriptor.
type Descriptor interface {
	Slug() string
	Title() string
	// SampleOnly types serve fixed sample output and accept no custom models.
	SampleOnly() bool
	Sample() any
	SampleFilename() string
	Decode(body []byte) (any, error)
	Validate(model any) validation.Result
	Render(model any, opt render.Options) ([]byte, error)
	Filename(model any, now time.Time) string
	Reference(model any) string
	Variants() []Variant
}

// Type is a Descriptor over models of type *T.
type Type[T any] struct {
	slug           string
	title          string
	sampleOnly     bool
	sample         func() *T
	sampleFilename string
	rules          []validation.Rule[*T]
	build          func(*T, render.Options) ([]byte, error)
	filename       func(*T, time.Time) string
	reference      func(*T) string
	variants       []Variant
}

var _ Descriptor = (*Type[struct{}])(nil)

func (t *Type[T]) Slug() string { return t.slug }
func (t *Type[T]) Title() string { return t.title }
func (t *Type[T]) SampleOnly() bool { return t.sampleOnly }
func (t *Type[T]) Sample() any { return t.sample() }
func (t *Type[T]) SampleFilename() string { return t.sampleFilename }
func (t *Type[T]) Variants() []Variant { return t.variants }

// Decode parses a JSON body into a fresh *T.
func (t *Type[T]) Decode(body []byte) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, apperr.InvalidArgument(MsgNullModel)
	}
	m := new(T)
	if err := json.Unmarshal(trimmed, m); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, MsgInvalidBody)
	}
	return m, nil
}

// Validate runs the type's rule table. A nil or foreign model yields a single
// "Model cannot be null" message.
func (t *Type[T]) Validate(model any) validation.Result {
	m, ok := model.(*T)
	if !ok || m == nil {
		return validation.Result{Valid: false, Messages: []string{MsgNullModel}}
	}
	return validation.Validate(m, t.rules)
}

func (t *Type[T]) Render(model any, opt render.Options) ([]byte, error) {
	m, err := t.cast(model)
	if err != nil {
		return nil, err
	}
	return t.build(m, opt)
}

func (t *Type[T]) Filename(model any, now time.Time) string {
	m, err := t.cast(model)
	if err != nil || t.filename == nil {
		return t.sampleFilename
	}
	return t.filename(m, now)
}

func (t *Type[T]) Reference(model any) string {
	m, err := t.cast(model)
	if err != nil || t.reference == nil {
		return ""
	}
	return t.reference(m)
}

func (t *Type[T]) cast(model any) (*T, error) {
	m, ok := model.(*T)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected model type %T", t.slug, model)
	}
	if m == nil {
		return nil, apperr.InvalidArgument(MsgNullModel)
	}
	return m, nil
}

func dated(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("20060102") + ".pdf"
}
