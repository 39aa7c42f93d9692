// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms decodes and validates form submissions.
//
// The pipeline has three stages, each usable on its own:
//
//  1. Decode     — Decode/DecodeMultipart turn a request body into a Form,
//     enforcing the per-part upload ceiling while streaming.
//  2. Guards     — Honeypot.Check rejects obvious automation before any
//     field-level validation runs.
//  3. Validation — per-form parsers (e.g. ParseNoteEditor) turn a Form
//     into a Submission carrying either a typed value or a tree of field
//     errors keyed by field path.
package forms

// File is a decoded file part. The whole payload is held in memory, which
// is acceptable because DecodeMultipart bounds every part's size before a
// File is ever constructed.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Form holds the decoded raw fields of a submission: repeatable text
// values and file parts, both keyed by field name.
type Form struct {
	Values map[string][]string
	Files  map[string][]*File
}

// NewForm returns an empty Form ready to be filled by a decoder.
func NewForm() *Form {
	return &Form{
		Values: make(map[string][]string),
		Files:  make(map[string][]*File),
	}
}

// Value returns the first text value submitted under name, or "".
func (f *Form) Value(name string) string {
	if values := f.Values[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// File returns the first file submitted under name, or nil.
func (f *Form) File(name string) *File {
	if files := f.Files[name]; len(files) > 0 {
		return files[0]
	}
	return nil
}

// Has reports whether any text value or file was submitted under name.
func (f *Form) Has(name string) bool {
	return len(f.Values[name]) > 0 || len(f.Files[name]) > 0
}
