package handler

import "net/http"

// Handlers groups everything Routes needs.
type Handlers struct {
	Base       *Handler
	Contact    *ContactHandler
	Newsletter *NewsletterHandler
	Project    *ProjectHandler
}

// Routes builds the API mux wrapped in the middleware chain:
// request id, access log, security headers, CORS.
func Routes(hs Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", hs.Base.Health)
	mux.HandleFunc("POST /api/contact", hs.Contact.Submit)
	mux.HandleFunc("POST /api/newsletter", hs.Newsletter.Subscribe)
	mux.HandleFunc("GET /api/projects", hs.Project.List)
	mux.HandleFunc("GET /api/projects/featured", hs.Project.Featured)

	return RequestID(RequestLogger(SecurityHeaders(hs.Base.CORS(mux))))
}
