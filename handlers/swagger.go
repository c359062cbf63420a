package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the dashboard.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>clinicdash API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the dashboard's main endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "clinicdash", "version": "v0.1.0" },
  "paths": {
    "/api/doctors": {
      "get": { "summary": "List doctors (re-fetched from the content API)", "responses": { "200": { "description": "doctor cards + stale marker" } } },
      "post": { "summary": "Create a doctor", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"data":{"type":"string","description":"JSON-encoded attributes"},"files.image":{"type":"string","format":"binary"}}}}}}, "responses": { "201": { "description": "created record" }, "400": { "description": "missing required field" } } }
    },
    "/api/doctors/{id}": {
      "put": { "summary": "Replace a doctor's fields (attachment optional; absence leaves the stored image alone)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a doctor permanently", "responses": { "204": { "description": "deleted" } } }
    },
    "/api/doctors/{id}/edit": {
      "post": { "summary": "Open the edit session for a record (replaces any open session)", "responses": { "200": { "description": "edit form view" }, "404": { "description": "unknown doctor" } } }
    },
    "/api/edit": {
      "get": { "summary": "Current edit form", "responses": { "200": { "description": "form view" }, "404": { "description": "no session open" } } },
      "patch": { "summary": "Set one field of the edit buffer", "responses": { "200": { "description": "updated form view" } } },
      "delete": { "summary": "Cancel the edit session (no network call)", "responses": { "204": { "description": "cancelled" } } }
    },
    "/api/edit/commit": {
      "post": { "summary": "Commit the edit buffer to the content API", "responses": { "200": { "description": "saved; store re-fetched" }, "502": { "description": "transport failure; session stays open" } } }
    },
    "/api/appointments": {
      "get": { "summary": "List appointments (read-only)", "responses": { "200": { "description": "appointment cards" } } }
    },
    "/api/ui/tab": {
      "get": { "summary": "Active tab for this client", "responses": { "200": { "description": "activeTab" } } },
      "put": { "summary": "Select a tab (home|doctorList|addDoctor|appointments|settings)", "responses": { "200": { "description": "activeTab" }, "400": { "description": "unknown tab" } } }
    },
    "/api/dashboard": {
      "get": { "summary": "Home-tab stat cards", "responses": { "200": { "description": "dashboard view" } } }
    }
  }
}`
