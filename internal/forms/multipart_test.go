// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// multipartBuilder accumulates parts and produces a ready request.
type multipartBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
}

func newMultipartBuilder() *multipartBuilder {
	b := &multipartBuilder{}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

func (b *multipartBuilder) field(t *testing.T, name, value string) *multipartBuilder {
	t.Helper()
	require.NoError(t, b.writer.WriteField(name, value))
	return b
}

func (b *multipartBuilder) file(t *testing.T, name, filename, contentType string, data []byte) *multipartBuilder {
	t.Helper()
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+name+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := b.writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	return b
}

func (b *multipartBuilder) request(t *testing.T) *http.Request {
	t.Helper()
	require.NoError(t, b.writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/", &b.buf)
	req.Header.Set("Content-Type", b.writer.FormDataContentType())
	return req
}

// ─────────────────────────────────────────────
// DecodeMultipart
// ─────────────────────────────────────────────

func TestDecodeMultipart_FieldsAndFiles(t *testing.T) {
	req := newMultipartBuilder().
		field(t, "title", "Basic Koala Facts").
		field(t, "content", "Koalas are fuzzy.").
		file(t, "images[0].file", "koala.png", "image/png", []byte("png-bytes")).
		request(t)

	form, err := DecodeMultipart(req, 1024)
	require.NoError(t, err)

	assert.Equal(t, "Basic Koala Facts", form.Value("title"))
	assert.Equal(t, "Koalas are fuzzy.", form.Value("content"))

	file := form.File("images[0].file")
	require.NotNil(t, file)
	assert.Equal(t, "koala.png", file.Filename)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, int64(9), file.Size)
	assert.Equal(t, []byte("png-bytes"), file.Data)
}

func TestDecodeMultipart_OversizedPartAborts(t *testing.T) {
	req := newMultipartBuilder().
		field(t, "title", "ok").
		file(t, "images[0].file", "big.png", "image/png", bytes.Repeat([]byte("x"), 64)).
		field(t, "content", "never reached").
		request(t)

	_, err := DecodeMultipart(req, 16)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeMultipart_PartAtLimitIsAccepted(t *testing.T) {
	req := newMultipartBuilder().
		file(t, "images[0].file", "exact.png", "image/png", bytes.Repeat([]byte("x"), 16)).
		request(t)

	form, err := DecodeMultipart(req, 16)
	require.NoError(t, err)
	require.NotNil(t, form.File("images[0].file"))
	assert.Equal(t, int64(16), form.File("images[0].file").Size)
}

func TestDecodeMultipart_EmptyFileInputIsAbsent(t *testing.T) {
	// An untouched <input type="file"> still submits a zero-byte part
	// with an empty filename.
	req := newMultipartBuilder().
		file(t, "images[0].file", "", "application/octet-stream", nil).
		field(t, "images[0].altText", "").
		request(t)

	form, err := DecodeMultipart(req, 1024)
	require.NoError(t, err)
	assert.Nil(t, form.File("images[0].file"))
	assert.False(t, len(form.Files["images[0].file"]) > 0)
}

func TestDecodeMultipart_CumulativeBytesCapped(t *testing.T) {
	// Every part stays under the per-part ceiling; the body as a whole
	// must still be bounded.
	builder := newMultipartBuilder()
	for i := 0; i < 10; i++ {
		builder.file(t, fmt.Sprintf("images[%d].file", i), "chunk.png", "image/png",
			bytes.Repeat([]byte("x"), 60))
	}

	_, err := DecodeMultipart(builder.request(t), 64)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeMultipart_PartFloodCapped(t *testing.T) {
	builder := newMultipartBuilder()
	for i := 0; i <= maxFormParts; i++ {
		builder.field(t, fmt.Sprintf("field%d", i), "x")
	}

	_, err := DecodeMultipart(builder.request(t), 1024)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeMultipart_FullSubmissionWithinBudget(t *testing.T) {
	// Five files at the per-part cap plus text fields must decode: the
	// overall ceiling leaves room for a maximal legitimate submission.
	builder := newMultipartBuilder().
		field(t, "title", "Basic Koala Facts").
		field(t, "content", "Koalas are fuzzy.")
	for i := 0; i < 5; i++ {
		builder.file(t, fmt.Sprintf("images[%d].file", i), "full.png", "image/png",
			bytes.Repeat([]byte("x"), 64))
	}

	form, err := DecodeMultipart(builder.request(t), 64)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NotNil(t, form.File(fmt.Sprintf("images[%d].file", i)))
	}
}

func TestDecodeMultipart_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := DecodeMultipart(req, 1024)
	assert.ErrorIs(t, err, ErrMalformedBody)
}

// ─────────────────────────────────────────────
// Decode / DecodeForm
// ─────────────────────────────────────────────

func TestDecode_DispatchesOnContentType(t *testing.T) {
	urlencoded := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("intent=delete&noteId=n1"))
	urlencoded.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := Decode(urlencoded, 1024)
	require.NoError(t, err)
	assert.Equal(t, "delete", form.Value("intent"))
	assert.Equal(t, "n1", form.Value("noteId"))

	multi := newMultipartBuilder().field(t, "intent", "submit").request(t)
	form, err = Decode(multi, 1024)
	require.NoError(t, err)
	assert.Equal(t, "submit", form.Value("intent"))
}

func TestDecode_MissingContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))

	_, err := Decode(req, 1024)
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestDecodeForm_OversizedBodyRejected(t *testing.T) {
	body := "a=" + strings.Repeat("x", maxTextPartSize+1)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := Decode(req, 1024)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}
