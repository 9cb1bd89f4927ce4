package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gestionale-hr/personnel-backend/internal/blob"
	"github.com/gestionale-hr/personnel-backend/internal/database"
	"github.com/gestionale-hr/personnel-backend/internal/models"
	"github.com/gestionale-hr/personnel-backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document attachment requests
type DocumentHandler struct {
	repo     *database.EmployeeRepository
	store    blob.Store
	notifier session.Notifier
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(repo *database.EmployeeRepository, store blob.Store, notifier session.Notifier) *DocumentHandler {
	return &DocumentHandler{repo: repo, store: store, notifier: notifier}
}

// documentKey builds the namespaced storage key for a document ref.
func documentKey(employeeID, ref string) string {
	return "employees/" + employeeID + "/documents/" + ref
}

// Upload stores a new document blob and attaches its reference
// POST /api/v1/employees/:id/documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	sess, ok := h.openSession(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "a file is required",
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}
	defer file.Close()

	// Fresh random suffix per upload so identical filenames never collide.
	ref := uuid.New().String() + "_" + filepath.Base(header.Filename)
	key := documentKey(sess.Record().ID, ref)

	if err := h.store.Upload(c.Request.Context(), key, file, header.Header.Get("Content-Type")); err != nil {
		h.notifier.NotifyError(err.Error())
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upload_failed",
			"message": err.Error(),
		})
		return
	}

	if err := sess.Edit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "save_failed",
			"message": err.Error(),
		})
		return
	}
	if err := sess.AddDocument(ref); err != nil {
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
		"document": ref,
	})
}

// ResolveURL returns a retrievable URL for an attached document
// GET /api/v1/employees/:id/documents/:ref/url
func (h *DocumentHandler) ResolveURL(c *gin.Context) {
	record, ok := h.getRecord(c)
	if !ok {
		return
	}

	ref := c.Param("ref")
	if !record.HasDocument(ref) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "no such document",
		})
		return
	}

	url, err := h.store.ResolveURL(c.Request.Context(), documentKey(record.ID, ref))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "resolve_failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Remove detaches a document reference from the record. The stored
// blob is kept; only the reference is removed.
// DELETE /api/v1/employees/:id/documents/:ref
func (h *DocumentHandler) Remove(c *gin.Context) {
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
	if err := sess.RemoveDocument(c.Param("ref")); err != nil {
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
	})
}

func (h *DocumentHandler) getRecord(c *gin.Context) (record *models.Employee, ok bool) {
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
	return record, true
}

func (h *DocumentHandler) openSession(c *gin.Context) (*session.Session, bool) {
	record, ok := h.getRecord(c)
	if !ok {
		return nil, false
	}
	return session.New(employeesCollection, record, h.repo, h.notifier), true
}
