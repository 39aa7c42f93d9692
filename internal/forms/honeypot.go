// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

// Honeypot field names. Both masquerade as confirmation inputs so that
// naive form-fillers populate the decoy and scripted submitters reuse a
// stale or fabricated timestamp.
const (
	DecoyFieldName     = "name__confirm"
	TimestampFieldName = "from__confirm"
)

// Honeypot detects automated form submissions. Fields is called when a
// form is rendered; Check runs on submission before any field-level
// validation.
type Honeypot struct {
	secret     string
	minElapsed time.Duration
	now        func() time.Time
}

// NewHoneypot builds a Honeypot that signs its timestamps with secret and
// rejects submissions arriving sooner than minElapsed after render.
func NewHoneypot(secret string, minElapsed time.Duration) *Honeypot {
	return &Honeypot{
		secret:     secret,
		minElapsed: minElapsed,
		now:        time.Now,
	}
}

// HoneypotFields is what a rendered form embeds: a decoy input that must
// stay empty and a signed render timestamp echoed back verbatim.
type HoneypotFields struct {
	DecoyName      string `json:"decoyName"`
	TimestampName  string `json:"timestampName"`
	TimestampValue string `json:"timestampValue"`
}

// Fields returns fresh honeypot fields for one form render. The timestamp
// value is "<unixMillis>:<hmac>" so Check can verify both authenticity
// and age without server-side state.
func (h *Honeypot) Fields() HoneypotFields {
	millis := strconv.FormatInt(h.now().UnixMilli(), 10)
	return HoneypotFields{
		DecoyName:      DecoyFieldName,
		TimestampName:  TimestampFieldName,
		TimestampValue: millis + ":" + utils.SignString(h.secret, millis),
	}
}

// Check inspects the submitted form and returns [ErrBotDetected] when the
// decoy field is non-empty, the timestamp is missing, forged, or
// malformed, or the form came back faster than a human could fill it.
// Every failure mode maps to the same error so callers cannot leak which
// check fired.
func (h *Honeypot) Check(form *Form) error {
	if form.Value(DecoyFieldName) != "" {
		return ErrBotDetected
	}

	millis, signature, ok := strings.Cut(form.Value(TimestampFieldName), ":")
	if !ok {
		return ErrBotDetected
	}
	if !utils.VerifyString(h.secret, millis, signature) {
		return ErrBotDetected
	}

	renderedAt, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return ErrBotDetected
	}
	if h.now().Sub(time.UnixMilli(renderedAt)) < h.minElapsed {
		return ErrBotDetected
	}

	return nil
}
