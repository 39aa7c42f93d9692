package http

import (
	"net/http"

	"github.com/TituxMetal/epicweb-notes-app/internal/config"
	"github.com/TituxMetal/epicweb-notes-app/internal/cookies"
	"github.com/TituxMetal/epicweb-notes-app/internal/crypto"
	"github.com/TituxMetal/epicweb-notes-app/internal/forms"
	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/service"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

// csrfFieldName is the form field that echoes the CSRF cookie token back
// on every mutating submission.
const csrfFieldName = "csrf"

type Handler struct {
	services *service.Services

	session  *cookies.SessionCodec
	toast    *cookies.ToastCodec
	csrf     *cookies.CSRFCodec
	honeypot *forms.Honeypot

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, ring crypto.KeyRing, logger *logger.Logger) (*Handler, error) {
	secrets := cfg.Secrets()
	secure := cfg.Production()

	session, err := cookies.NewSessionCodec(secrets, ring, secure)
	if err != nil {
		return nil, err
	}
	toast, err := cookies.NewToastCodec(secrets, ring, secure)
	if err != nil {
		return nil, err
	}
	csrf, err := cookies.NewCSRFCodec(secrets, ring, secure)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		session:       session,
		toast:         toast,
		csrf:          csrf,
		honeypot:      forms.NewHoneypot(secrets[0], cfg.HoneypotDelay()),
		maxUploadSize: cfg.UploadLimit(),
		logger:        logger,
	}, nil
}

// decodeGuarded runs the shared front of the mutation pipeline: body
// decode, CSRF validation, and (when guarded) the honeypot check. On
// failure the response has already been written and the second return
// value is false.
func (h *Handler) decodeGuarded(w http.ResponseWriter, r *http.Request, honeypot bool) (*forms.Form, bool) {
	log := logger.FromRequest(r)

	form, err := forms.Decode(r, h.maxUploadSize)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decodeGuarded").Msg("error decoding form body")
		h.writeError(w, r, err)
		return nil, false
	}

	if err = h.csrf.Validate(r, form.Value(csrfFieldName)); err != nil {
		log.Warn().Str("func", "*Handler.decodeGuarded").Msg("CSRF validation failed")
		h.writeError(w, r, err)
		return nil, false
	}

	if honeypot {
		if err = h.honeypot.Check(form); err != nil {
			log.Warn().Str("func", "*Handler.decodeGuarded").Msg("honeypot check failed")
			h.writeError(w, r, err)
			return nil, false
		}
	}

	return form, true
}

// actingUserID returns the user bound to the request's session, or ""
// for anonymous visitors.
func (h *Handler) actingUserID(r *http.Request) string {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return ""
	}
	return session.UserID
}
