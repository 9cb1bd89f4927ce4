package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gestionale-hr/personnel-backend/internal/database"
	"github.com/gestionale-hr/personnel-backend/internal/models"
	"github.com/gestionale-hr/personnel-backend/internal/query"
	"github.com/gestionale-hr/personnel-backend/internal/session"
	"github.com/gin-gonic/gin"
)

// employeesCollection is the collection segment used in redirect paths.
const employeesCollection = "employees"

// EmployeeHandler handles roster and employee CRUD requests
type EmployeeHandler struct {
	repo     *database.EmployeeRepository
	engine   *query.Engine
	notifier session.Notifier
}

// NewEmployeeHandler creates a new EmployeeHandler. The roster engine
// searches name and surname and sorts by surname, then name.
func NewEmployeeHandler(repo *database.EmployeeRepository, notifier session.Notifier) *EmployeeHandler {
	return &EmployeeHandler{
		repo: repo,
		engine: query.NewEngine(query.Config{
			SearchFields: []string{"name", "surname"},
			SortFields:   []string{"surname", "name"},
		}),
		notifier: notifier,
	}
}

// listParams reads the filter and paging query string into engine params.
func listParams(c *gin.Context) query.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(query.DefaultPageSize)))

	return query.Params{
		Search: c.Query("search"),
		Filters: map[string]string{
			"employed": c.DefaultQuery("employed", query.FilterAll),
		},
		Page:     page,
		PageSize: pageSize,
	}
}

// List returns the filtered, sorted, paginated roster
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.repo.ListRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "list_failed",
			"message": err.Error(),
		})
		return
	}

	rows := make([]query.Row, len(employees))
	for i := range employees {
		rows[i] = &employees[i]
	}

	result := h.engine.Query(rows, listParams(c))

	c.JSON(http.StatusOK, gin.H{
		"employees":   result.Rows,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

// Get returns one employee record
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.repo.GetRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "no such record",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "get_failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Create saves a new employee record
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input models.Employee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	sess := session.NewDraft(employeesCollection, h.repo, h.notifier)
	if err := sess.Apply(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "save_failed",
			"message": err.Error(),
		})
		return
	}

	result, err := sess.Save()
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  result.Message,
		"redirect": result.Redirect,
		"employee": sess.Record(),
	})
}

// Update saves changes to an existing employee record
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var input models.Employee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	sess, ok := h.openSession(c)
	if !ok {
		return
	}
	if err := sess.Edit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "save_failed",
			"message": err.Error(),
		})
		return
	}
	if err := sess.Apply(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "save_failed",
			"message": err.Error(),
		})
		return
	}

	result, err := sess.Save()
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  result.Message,
		"redirect": result.Redirect,
		"employee": sess.Record(),
	})
}

// Delete removes an employee record permanently
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	sess, ok := h.openSession(c)
	if !ok {
		return
	}

	result, err := sess.Delete()
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  result.Message,
		"redirect": result.Redirect,
	})
}

// openSession loads the record named in the path and opens an edit
// session over it, writing the error response itself on failure.
func (h *EmployeeHandler) openSession(c *gin.Context) (*session.Session, bool) {
	record, err := h.repo.GetRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "no such record",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "get_failed",
			"message": err.Error(),
		})
		return nil, false
	}

	return session.New(employeesCollection, record, h.repo, h.notifier), true
}

// respondSaveError maps workflow errors to HTTP responses: validation
// failures are the client's fault, store failures are upstream.
func respondSaveError(c *gin.Context, err error) {
	if session.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{
		"error":   "store_error",
		"message": err.Error(),
	})
}
