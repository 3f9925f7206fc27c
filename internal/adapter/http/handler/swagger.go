package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiSpec holds the OpenAPI YAML loaded at startup.
var apiSpec []byte

// SetAPISpec sets the OpenAPI document served under /docs.
func SetAPISpec(spec []byte) {
	apiSpec = spec
}

// APISpec serves the raw OpenAPI YAML.
func APISpec(c *gin.Context) {
	if apiSpec == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", apiSpec)
}

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Ramp Gateway API</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/docs/spec', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`

// APIDocs serves a Swagger UI page that loads /docs/spec.
func APIDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}
