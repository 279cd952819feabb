package combine

import (
	"errors"
	"strings"
)

var errEmptyFailure = errors.New("failure without error")

// Errors is an ordered list of distinct failures.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	return cloneErrors(e)
}

// First returns the earliest failure, nil for an empty list.
func (e Errors) First() error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}

// List flattens err into its individual failures. A nil error yields nil.
func List(err error) []error {
	return flatten(err)
}

// FirstOf returns the first individual failure inside err.
func FirstOf(err error) error {
	flat := flatten(err)
	if len(flat) == 0 {
		return nil
	}
	return flat[0]
}

// merge appends the failures of next to acc, skipping any whose message is already
// present. The first occurrence wins and insertion order is kept.
func merge(acc, next []error) []error {
	for _, err := range next {
		if !containsMessage(acc, err.Error()) {
			acc = append(acc, err)
		}
	}
	return acc
}

func containsMessage(errs []error, msg string) bool {
	for _, err := range errs {
		if err.Error() == msg {
			return true
		}
	}
	return false
}

// flatten expands errors.Join trees and Errors lists into leaf errors, dropping nils.
func flatten(errs ...error) []error {
	var out []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			out = merge(out, flatten(multi.Unwrap()...))
			continue
		}
		out = merge(out, []error{err})
	}
	return out
}

func cloneErrors(errs []error) []error {
	if len(errs) == 0 {
		return nil
	}
	return append([]error(nil), errs...)
}
