package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the
// registry API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>docregistry — Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "docregistry", "version": "v0.1.0" },
  "paths": {
    "/documents": {
      "post": {
        "summary": "Register a document",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"hash":{"type":"string"},"owner":{"type":"string"},"status":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored document, including generated id" } }
      },
      "get": {
        "summary": "List all documents",
        "responses": { "200": { "description": "array of documents in store key order" } }
      }
    },
    "/documents/{id}": {
      "get": {
        "summary": "Fetch one document",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
        "responses": { "200": { "description": "document" }, "404": { "description": "no document with that id" } }
      },
      "put": {
        "summary": "Merge fields over a document",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"hash":{"type":"string"},"owner":{"type":"string"},"status":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated document" }, "400": { "description": "no document with that id" } }
      },
      "delete": {
        "summary": "Remove a document",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
        "responses": { "200": { "description": "removed document" }, "400": { "description": "no document with that id" } }
      }
    }
  }
}`
