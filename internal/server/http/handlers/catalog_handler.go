package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/studydesk/internal/catalog"
)

// CatalogHandler serves the static reference data consumed by the form UI.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Courses handles GET /api/catalog/courses.
func (h *CatalogHandler) Courses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Courses())
}

// Faculties handles GET /api/catalog/faculties.
func (h *CatalogHandler) Faculties(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Faculties())
}

// WorkTypes handles GET /api/catalog/work-types.
func (h *CatalogHandler) WorkTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.WorkTypes())
}

// Semesters handles GET /api/catalog/semesters?course=. An unknown course
// yields an empty list, mirroring the lookup contract.
func (h *CatalogHandler) Semesters(c *gin.Context) {
	semesters := h.catalog.SemestersFor(c.Query("course"))
	if semesters == nil {
		semesters = []string{}
	}
	c.JSON(http.StatusOK, semesters)
}

// Subjects handles GET /api/catalog/subjects?faculty=.
func (h *CatalogHandler) Subjects(c *gin.Context) {
	subjects := h.catalog.SubjectsFor(c.Query("faculty"))
	if subjects == nil {
		subjects = []string{}
	}
	c.JSON(http.StatusOK, subjects)
}
