// File: handlers/publication.go
package handlers

import (
	"net/http"

	"praxia/models"
	"praxia/services/publication"

	"github.com/gin-gonic/gin"
)

// PublicationHandler exposes the authoring endpoints.
type PublicationHandler struct {
	Service publication.PublicationService
}

// NewPublicationHandler constructs a PublicationHandler.
func NewPublicationHandler(svc publication.PublicationService) *PublicationHandler {
	return &PublicationHandler{Service: svc}
}

// CreatePublicationHandler handles POST /publications.
func (h *PublicationHandler) CreatePublicationHandler(c *gin.Context) {
	var req models.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	pub, err := h.Service.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pub)
}

// GetPublicationHandler handles GET /publications/:id.
func (h *PublicationHandler) GetPublicationHandler(c *gin.Context) {
	pub, err := h.Service.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pub)
}

// ListPublicationsHandler handles GET /publications.
func (h *PublicationHandler) ListPublicationsHandler(c *gin.Context) {
	pubs, err := h.Service.ListByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pubs)
}

// UpdatePublicationHandler handles PATCH /publications/:id.
func (h *PublicationHandler) UpdatePublicationHandler(c *gin.Context) {
	var req models.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := h.Service.UpdateMeta(c.Request.Context(), c.GetString("userID"), c.Param("id"),
		req.Title, req.Language, req.Abstract); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Publication updated"})
}

// UpsertSectionHandler handles PUT /publications/:id/sections.
func (h *PublicationHandler) UpsertSectionHandler(c *gin.Context) {
	var req models.UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	section, err := h.Service.UpsertSection(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, section)
}

// RemoveSectionHandler handles DELETE /publications/:id/sections/:sectionID.
func (h *PublicationHandler) RemoveSectionHandler(c *gin.Context) {
	if err := h.Service.RemoveSection(c.Request.Context(), c.GetString("userID"),
		c.Param("id"), c.Param("sectionID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section removed"})
}

// AddReferenceHandler handles POST /publications/:id/references.
func (h *PublicationHandler) AddReferenceHandler(c *gin.Context) {
	var req models.AddReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ref, err := h.Service.AddReference(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// RemoveReferenceHandler handles DELETE /publications/:id/references/:refID.
func (h *PublicationHandler) RemoveReferenceHandler(c *gin.Context) {
	if err := h.Service.RemoveReference(c.Request.Context(), c.GetString("userID"),
		c.Param("id"), c.Param("refID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reference removed"})
}

// FinalizePublicationHandler handles POST /publications/:id/finalize.
func (h *PublicationHandler) FinalizePublicationHandler(c *gin.Context) {
	if err := h.Service.Finalize(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Publication finalized"})
}

// DraftSectionHandler handles POST /publications/:id/draft-section.
func (h *PublicationHandler) DraftSectionHandler(c *gin.Context) {
	var req models.DraftSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	draft, err := h.Service.DraftSection(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ExportPublicationHandler handles GET /publications/:id/export?format=markdown.
func (h *PublicationHandler) ExportPublicationHandler(c *gin.Context) {
	format := c.DefaultQuery("format", publication.FormatMarkdown)
	out, err := h.Service.Export(c.Request.Context(), c.GetString("userID"), c.Param("id"), format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"format": format, "content": out})
}
