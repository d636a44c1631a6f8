package api

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var openAPISchema []byte

//go:embed docs.html
var docsPage []byte

// GetSchema serves the OpenAPI description of the public API.
func (h *HTTPHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPISchema)
}

// GetDocs serves a static Swagger UI page backed by /api/schema.
func (h *HTTPHandler) GetDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(docsPage)
}
