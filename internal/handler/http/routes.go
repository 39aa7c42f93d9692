package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))
	router.Use(h.withSession)

	router.Get("/", h.root)

	router.Get("/signup", h.signupForm)
	router.Post("/signup", h.signup)

	router.Post("/theme", h.switchTheme)

	router.Get("/resources/images/{imageID}", h.serveImage)
	router.Get("/resources/user-images/{imageID}", h.serveUserImage)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.searchUsers)
		r.Route("/{username}", func(r chi.Router) {
			r.Get("/", h.userProfile)
			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.listNotes)
				r.Post("/new", h.createNote)
				r.Route("/{noteID}", func(r chi.Router) {
					r.Get("/", h.getNote)
					r.Post("/", h.deleteNote)
					r.Get("/edit", h.editNoteForm)
					r.Post("/edit", h.editNote)
				})
			})
		})
	})

	return router
}
