package validation

import (
	"github.com/go-playground/validator/v10"
)

// Package-level validator; safe for concurrent use.
var validate = validator.New()

// Rule is one required-field or required-collection check for a model of type T.
type Rule[T any] struct {
	Message  string
	Violated func(T) bool
}

// Result collects the messages of every violated rule, in rule order.
type Result struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

// Validate runs rules against model. It never panics on nil sub-objects as long
// as the rules guard their own dereferences.
func Validate[T any](model T, rules []Rule[T]) Result {
	messages := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Violated(model) {
			messages = append(messages, r.Message)
		}
	}
	return Result{Valid: len(messages) == 0, Messages: messages}
}

// Blank reports whether s is empty.
func Blank(s string) bool {
	return validate.Var(s, "required") != nil
}

// Empty reports whether the collection is nil or has no elements.
func Empty[E any](items []E) bool {
	return validate.Var(items, "min=1") != nil
}

// Any reports whether at least one element satisfies pred.
func Any[E any](items []E, pred func(E) bool) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}

// NotPositive reports whether v fails a strict "> 0" check.
func NotPositive(v float64) bool {
	return validate.Var(v, "gt=0") != nil
}

// Negative reports whether v fails a ">= 0" check.
func Negative(v float64) bool {
	return validate.Var(v, "gte=0") != nil
}
