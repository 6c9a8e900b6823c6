package handler

import (
	"net/http"

	"github.com/aadarshsenapati/globetrotter/backend/spec"
)

const docsPage = `<!doctype html>
<html>
<head>
  <title>GlobeTrotter API</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.yaml"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// GetOpenAPISpec handles GET /openapi.yaml, serving the embedded spec.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// GetDocs handles GET /docs, an interactive reference backed by /openapi.yaml.
func (s *Server) GetDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}
