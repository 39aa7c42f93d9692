// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import "fmt"

// IntentSubmit marks a full submission. Any other intent value (list
// insert/remove markers sent by client-assisted editing) yields an
// intermediate result that must not be persisted.
const IntentSubmit = "submit"

// Result classifies a parsed submission.
type Result int

const (
	// Intermediate means the submission carries a non-submit intent. The
	// caller re-renders the form with the partially-validated value and
	// errors, and persists nothing.
	Intermediate Result = iota

	// Accepted means the value tree is fully typed and every constraint
	// holds.
	Accepted

	// Rejected means at least one field or form-level constraint failed.
	Rejected
)

// Errors is a tree of validation messages mirrored onto the field paths
// of the submitted form, e.g. "title" or "images[2].file", plus optional
// form-level messages for cross-field failures.
type Errors struct {
	Fields map[string][]string `json:"fieldErrors,omitempty"`
	Form   []string            `json:"formErrors,omitempty"`
}

// AddField records a message against a field path.
func (e *Errors) AddField(path, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[path] = append(e.Fields[path], message)
}

// AddForm records a form-level message.
func (e *Errors) AddForm(message string) {
	e.Form = append(e.Form, message)
}

// Empty reports whether no message has been recorded.
func (e *Errors) Empty() bool {
	return len(e.Fields) == 0 && len(e.Form) == 0
}

// Submission is the outcome of validating one form against a schema. The
// value and the errors are both always populated as far as validation
// got: an intermediate or rejected submission still carries the typed
// fields that did parse, so the form can be re-rendered with the user's
// input intact.
type Submission[T any] struct {
	Intent string `json:"intent"`
	Value  T      `json:"value"`
	Errors Errors `json:"error"`
}

// Result returns the tri-state classification: non-submit intents are
// intermediate regardless of errors, submit intents split on whether any
// error was collected.
func (s Submission[T]) Result() Result {
	if s.Intent != IntentSubmit {
		return Intermediate
	}
	if !s.Errors.Empty() {
		return Rejected
	}
	return Accepted
}

// fieldPath builds an indexed nested path like "images[2].file".
func fieldPath(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}

// checkRequiredString validates a required bounded string field and
// records its errors under path. It never stops early: a missing value
// and an overlong value are independent findings on different fields.
func checkRequiredString(errs *Errors, path, value string, maxLength int) {
	if value == "" {
		errs.AddField(path, "Required")
		return
	}
	if len([]rune(value)) > maxLength {
		errs.AddField(path, fmt.Sprintf("Must be %d characters or less", maxLength))
	}
}
