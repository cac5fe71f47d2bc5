// File: handlers/education.go
package handlers

import (
	"net/http"
	"time"

	"praxia/models"
	"praxia/services/education"

	"github.com/gin-gonic/gin"
)

// EducationHandler exposes the classroom portal endpoints.
type EducationHandler struct {
	Service education.EducationService
}

// NewEducationHandler constructs an EducationHandler.
func NewEducationHandler(svc education.EducationService) *EducationHandler {
	return &EducationHandler{Service: svc}
}

// ListCoursesHandler handles GET /education/courses.
func (h *EducationHandler) ListCoursesHandler(c *gin.Context) {
	courses, err := h.Service.ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourseHandler handles POST /education/courses (admin).
func (h *EducationHandler) CreateCourseHandler(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	course, err := h.Service.CreateCourse(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ListMaterialsHandler handles GET /education/courses/:id/materials.
func (h *EducationHandler) ListMaterialsHandler(c *gin.Context) {
	materials, err := h.Service.ListMaterials(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, materials)
}

// AddMaterialHandler handles POST /education/courses/:id/materials (admin).
func (h *EducationHandler) AddMaterialHandler(c *gin.Context) {
	var req models.AddMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	material, err := h.Service.AddMaterial(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, material)
}

// ListSessionsHandler handles GET /education/courses/:id/sessions.
func (h *EducationHandler) ListSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.ListUpcomingSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// ScheduleSessionHandler handles POST /education/courses/:id/sessions (admin).
func (h *EducationHandler) ScheduleSessionHandler(c *gin.Context) {
	var req models.ScheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	session, err := h.Service.ScheduleSession(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// PostChatMessageHandler handles POST /education/courses/:id/chat.
func (h *EducationHandler) PostChatMessageHandler(c *gin.Context) {
	var req models.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	msg, err := h.Service.PostChatMessage(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// PollChatMessagesHandler handles GET /education/courses/:id/chat?since=RFC3339.
// Clients poll this endpoint on a short interval; an absent cursor returns
// the recent window.
func (h *EducationHandler) PollChatMessagesHandler(c *gin.Context) {
	since := time.Time{}
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since cursor, expected RFC3339"})
			return
		}
		since = parsed
	}

	messages, err := h.Service.PollChatMessages(c.Request.Context(), c.Param("id"), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
