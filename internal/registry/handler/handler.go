package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attestia/docregistry/internal/registry/service"
	"github.com/attestia/docregistry/pkg/metrics"
)

// RegisterDocumentRoutes wires the registry CRUD surface onto the engine.
// The only client error is "not found": a GET miss answers 404, PUT/DELETE
// misses answer 400, each as plain text naming the operation and id.
// Anything else (unreadable body, store failure) is a 500.
func RegisterDocumentRoutes(r *gin.Engine, svc service.Service) {
	r.POST("/documents", func(c *gin.Context) {
		var req service.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.DocumentOperations.WithLabelValues("create", "error").Inc()
			c.String(http.StatusInternalServerError, "create document: %v", err)
			return
		}
		d, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			metrics.DocumentOperations.WithLabelValues("create", "error").Inc()
			c.String(http.StatusInternalServerError, "create document: %v", err)
			return
		}
		metrics.DocumentOperations.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusOK, d)
	})

	r.GET("/documents", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			metrics.DocumentOperations.WithLabelValues("list", "error").Inc()
			c.String(http.StatusInternalServerError, "list documents: %v", err)
			return
		}
		metrics.DocumentOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, list)
	})

	r.GET("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		d, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				metrics.DocumentOperations.WithLabelValues("get", "not_found").Inc()
				c.String(http.StatusNotFound, "get document %s: not found", id)
				return
			}
			metrics.DocumentOperations.WithLabelValues("get", "error").Inc()
			c.String(http.StatusInternalServerError, "get document %s: %v", id, err)
			return
		}
		metrics.DocumentOperations.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, d)
	})

	r.PUT("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req service.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.DocumentOperations.WithLabelValues("update", "error").Inc()
			c.String(http.StatusInternalServerError, "update document %s: %v", id, err)
			return
		}
		d, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				metrics.DocumentOperations.WithLabelValues("update", "not_found").Inc()
				c.String(http.StatusBadRequest, "update document %s: not found", id)
				return
			}
			metrics.DocumentOperations.WithLabelValues("update", "error").Inc()
			c.String(http.StatusInternalServerError, "update document %s: %v", id, err)
			return
		}
		metrics.DocumentOperations.WithLabelValues("update", "ok").Inc()
		c.JSON(http.StatusOK, d)
	})

	r.DELETE("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		d, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				metrics.DocumentOperations.WithLabelValues("delete", "not_found").Inc()
				c.String(http.StatusBadRequest, "delete document %s: not found", id)
				return
			}
			metrics.DocumentOperations.WithLabelValues("delete", "error").Inc()
			c.String(http.StatusInternalServerError, "delete document %s: %v", id, err)
			return
		}
		metrics.DocumentOperations.WithLabelValues("delete", "ok").Inc()
		c.JSON(http.StatusOK, d)
	})
}
