package handlers

import (
	"net/http"

	"github.com/gestionale-hr/personnel-backend/internal/database"
	"github.com/gestionale-hr/personnel-backend/internal/facet"
	"github.com/gestionale-hr/personnel-backend/internal/query"
	"github.com/gin-gonic/gin"
)

// QualificationHandler serves the per-category qualification rosters
type QualificationHandler struct {
	repo    *database.EmployeeRepository
	engines map[string]*query.Engine
}

// NewQualificationHandler creates a new QualificationHandler with one
// engine per known category. Qualification rows keep their snapshot
// order, so no sort fields are configured.
func NewQualificationHandler(repo *database.EmployeeRepository) *QualificationHandler {
	engines := make(map[string]*query.Engine)
	for _, category := range facet.Categories() {
		engines[category] = query.NewEngine(query.Config{
			SearchFields: facet.SearchFields(category),
		})
	}
	return &QualificationHandler{repo: repo, engines: engines}
}

// ListCategories returns the known qualification categories
// GET /api/v1/qualifications
func (h *QualificationHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"qualifications": facet.Categories(),
	})
}

// ListRows returns the flattened, filtered qualification roster
// GET /api/v1/qualifications/:category
func (h *QualificationHandler) ListRows(c *gin.Context) {
	category := c.Param("category")
	engine, ok := h.engines[category]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "no such qualification category",
		})
		return
	}

	employees, err := h.repo.ListRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "list_failed",
			"message": err.Error(),
		})
		return
	}

	flattened := facet.Flatten(employees, category)
	rows := make([]query.Row, len(flattened))
	for i := range flattened {
		rows[i] = flattened[i]
	}

	result := engine.Query(rows, listParams(c))

	c.JSON(http.StatusOK, gin.H{
		"qualification": category,
		"columns":       facet.VisibleColumns(category),
		"rows":          result.Rows,
		"total":         result.Total,
		"page":          result.Page,
		"total_pages":   result.TotalPages,
	})
}
