// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/TituxMetal/epicweb-notes-app/models"
)

// maxTextPartSize bounds buffered text fields. Text parts are expected to
// stay far below this; the cap only guards against a hostile body that
// labels a huge part as a plain field.
const maxTextPartSize = 1 << 20

// maxFormParts bounds the number of parts in one multipart body. A full
// editor submission needs a few dozen at most; a flood of tiny parts past
// this count is rejected without reading further.
const maxFormParts = 100

// bodyBudget is the overall request-body ceiling: room for every allowed
// file part at its cap plus one part's worth of text fields. Cumulative
// reads past this abort the decode even when each part stays under its
// own limit.
func bodyBudget(maxPartSize int64) int64 {
	return maxPartSize * int64(models.MaxImagesPerNote+1)
}

// Decode reads the request body into a Form, dispatching on the declared
// content type: multipart bodies go through the streaming decoder with
// maxPartSize enforced per file part, anything else is treated as a
// urlencoded form.
func Decode(r *http.Request, maxPartSize int64) (*Form, error) {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrMalformedBody
	}

	if contentType == "multipart/form-data" {
		return DecodeMultipart(r, maxPartSize)
	}
	return DecodeForm(r)
}

// DecodeMultipart stream-decodes a multipart body. File parts are read
// through a size-limited reader; the first part to exceed maxPartSize
// aborts the whole decode with [ErrPayloadTooLarge] without reading the
// remaining parts. The body as a whole is bounded too: at most
// maxFormParts parts and bodyBudget cumulative bytes, so a hostile client
// cannot buffer arbitrary memory by staying under the per-part cap.
func DecodeMultipart(r *http.Request, maxPartSize int64) (*Form, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, ErrMalformedBody
	}

	budget := bodyBudget(maxPartSize)
	parts := 0

	form := NewForm()
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		if err != nil {
			return nil, ErrMalformedBody
		}

		if parts++; parts > maxFormParts {
			return nil, ErrPayloadTooLarge
		}

		name := part.FormName()
		if name == "" {
			continue
		}

		if isFilePart(part.Header.Get("Content-Disposition")) {
			file, err := readFilePart(part, min(maxPartSize, budget))
			if err != nil {
				return nil, err
			}
			if file != nil {
				budget -= file.Size
				form.Files[name] = append(form.Files[name], file)
			}
			continue
		}

		value, err := readBounded(part, min(maxTextPartSize, budget))
		if err != nil {
			return nil, err
		}
		budget -= int64(len(value))
		form.Values[name] = append(form.Values[name], string(value))
	}
}

// DecodeForm reads a urlencoded body into a Form. Routes without file
// inputs (theme switch, delete) submit this way; their bodies are tiny,
// so the whole read is held to the text-part ceiling.
func DecodeForm(r *http.Request) (*Form, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxTextPartSize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, ErrPayloadTooLarge
		}
		return nil, ErrMalformedBody
	}

	form := NewForm()
	for name, values := range r.PostForm {
		form.Values[name] = values
	}
	return form, nil
}

// isFilePart reports whether the part carries a filename parameter.
// An empty file input still submits filename="", which a FileName-based
// check would misread as a text field, so the raw disposition is checked
// instead.
func isFilePart(disposition string) bool {
	return strings.Contains(disposition, "filename")
}

// readFilePart buffers one file part, enforcing limit. An empty part from
// an untouched file input yields nil: the field was submitted but holds
// no file.
func readFilePart(part *multipart.Part, limit int64) (*File, error) {
	data, err := readBounded(part, limit)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 && part.FileName() == "" {
		return nil, nil
	}

	return &File{
		Filename:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// readBounded reads src fully, failing with [ErrPayloadTooLarge] the
// moment more than limit bytes arrive.
func readBounded(src io.Reader, limit int64) ([]byte, error) {
	if limit < 0 {
		limit = 0
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(src, limit+1))
	if err != nil {
		return nil, ErrMalformedBody
	}
	if n > limit {
		return nil, ErrPayloadTooLarge
	}
	return buf.Bytes(), nil
}
