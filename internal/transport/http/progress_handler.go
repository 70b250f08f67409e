package handlers

import (
	"log"
	"net/http"

	"makon/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progress *usecase.ProgressUseCase
}

func NewProgressHandler(progress *usecase.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// POST /api/v1/progress/save
func (h *ProgressHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		CourseID        string `json:"course_id"`
		LessonID        string `json:"lesson_id"`
		ProgressSeconds int    `json:"progress_seconds"`
		Completed       bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if req.CourseID == "" || req.LessonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing course_id or lesson_id"})
		return
	}
	if req.ProgressSeconds < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progress_seconds"})
		return
	}

	record, err := h.progress.SaveProgress(c, userID, req.CourseID, req.LessonID, req.ProgressSeconds, req.Completed)
	if err != nil {
		log.Printf("Error saving progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// GET /api/v1/progress?courseId=...
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	records, err := h.progress.GetProgress(c, userID, c.Query("courseId"))
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}
