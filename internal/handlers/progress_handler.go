package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for course progress business logic.
//
// Every method works with the progress document of the client namespace given by "clientID".
// Invalid arguments are reported with services.ErrInvalidArgument or services.ErrInvalidStatus,
// storage failures with any other error.
type ProgressService interface {
	// Method GetState returns the whole progress document, the default document when none is stored.
	GetState(ctx context.Context, clientID string) (*models.ProgressState, error)
	// Method Reset deletes the progress document.
	Reset(ctx context.Context, clientID string) error
	// Method SetLastOpenedCourse records the course opened last.
	SetLastOpenedCourse(ctx context.Context, clientID, courseID string) error
	// Method SetLastLesson records the lesson opened last within a course.
	SetLastLesson(ctx context.Context, clientID, courseID, lessonID string) error
	// Method GetLastLesson returns the lesson opened last within a course, or "" when none.
	GetLastLesson(ctx context.Context, clientID, courseID string) (string, error)
	// Method GetLessonStatus returns the status of a lesson, models.LessonNotStarted when it was never set.
	GetLessonStatus(ctx context.Context, clientID, courseID, lessonID string) (models.LessonStatus, error)
	// Method SetLessonStatus stores the status of a lesson. The last write wins.
	SetLessonStatus(ctx context.Context, clientID, courseID, lessonID string, status models.LessonStatus) error
	// Method ToggleBookmark flips the bookmark of a lesson and returns the new value.
	ToggleBookmark(ctx context.Context, clientID, courseID, lessonID string) (bool, error)
	// Method IsBookmarked reports whether a lesson is bookmarked.
	IsBookmarked(ctx context.Context, clientID, courseID, lessonID string) (bool, error)
	// Method SetQuizAnswer stores the chosen answer of a quiz question.
	SetQuizAnswer(ctx context.Context, clientID, courseID, lessonID string, questionIndex, answerIndex int) error
	// Method GetQuizAnswer returns the chosen answer of a quiz question, "nil" when it was not answered.
	GetQuizAnswer(ctx context.Context, clientID, courseID, lessonID string, questionIndex int) (*int, error)
	// Method AddDailyUsageSeconds adds usage to the current day and returns the day total.
	AddDailyUsageSeconds(ctx context.Context, clientID string, seconds int) (int, error)
	// Method GetDailyUsageSeconds returns the usage of a day given as YYYY-MM-DD.
	GetDailyUsageSeconds(ctx context.Context, clientID, date string) (int, error)
	// Method GetLastDaysUsage returns the usage of the last "days" days ending today, oldest first.
	//
	// Zero "days" means the default of seven days.
	GetLastDaysUsage(ctx context.Context, clientID string, days int) ([]models.DailyUsage, error)
	// Method GetCourseProgress summarizes completion of the given lessons of a course.
	GetCourseProgress(ctx context.Context, clientID, courseID string, lessonIDs []string) (*models.CourseProgress, error)
}

// ProgressHandler handles course progress HTTP requests
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.GetState)
		r.Delete("/", h.Reset)
		r.Put("/last-opened", h.SetLastOpenedCourse)
		r.Route("/usage", func(r chi.Router) {
			r.Post("/", h.AddUsage)
			r.Get("/", h.GetLastDaysUsage)
			r.Get("/{date}", h.GetDailyUsage)
		})
		r.Route("/courses/{courseId}", func(r chi.Router) {
			r.Get("/", h.GetCourseProgress)
			r.Get("/last-lesson", h.GetLastLesson)
			r.Put("/last-lesson", h.SetLastLesson)
			r.Route("/lessons/{lessonId}", func(r chi.Router) {
				r.Get("/status", h.GetLessonStatus)
				r.Put("/status", h.SetLessonStatus)
				r.Get("/bookmark", h.IsBookmarked)
				r.Post("/bookmark", h.ToggleBookmark)
				r.Get("/quiz/{questionIndex}", h.GetQuizAnswer)
				r.Put("/quiz/{questionIndex}", h.SetQuizAnswer)
			})
		})
	})
}

// respondServiceError maps progress errors to HTTP statuses
func (h *ProgressHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, services.ErrInvalidArgument) || errors.Is(err, services.ErrInvalidStatus) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error(message, zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, message)
}

// GetState handles GET /api/progress
// @Summary Get progress document
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Success 200 {object} models.ProgressState
// @Failure 500 {object} map[string]string
// @Router /progress [get]
func (h *ProgressHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetState(r.Context(), h.clientID(r))
	if err != nil {
		h.respondServiceError(w, err, "failed to get progress")
		return
	}
	h.respondJSON(w, http.StatusOK, state)
}

// Reset handles DELETE /api/progress
// @Summary Reset progress
// @Tags progress
// @Param X-Client-ID header string true "Client namespace"
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /progress [delete]
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context(), h.clientID(r)); err != nil {
		h.respondServiceError(w, err, "failed to reset progress")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetLastOpenedCourse handles PUT /api/progress/last-opened
// @Summary Set last opened course
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param request body models.SetCourseRequest true "Course"
// @Success 200 {object} models.SetCourseRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/last-opened [put]
func (h *ProgressHandler) SetLastOpenedCourse(w http.ResponseWriter, r *http.Request) {
	var req models.SetCourseRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetLastOpenedCourse(r.Context(), h.clientID(r), req.CourseID); err != nil {
		h.respondServiceError(w, err, "failed to set last opened course")
		return
	}
	h.respondJSON(w, http.StatusOK, req)
}

// GetLastLesson handles GET /api/progress/courses/{courseId}/last-lesson
// @Summary Get last lesson of a course
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]string "lessonId is null when no lesson was opened"
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/last-lesson [get]
func (h *ProgressHandler) GetLastLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := h.service.GetLastLesson(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get last lesson")
		return
	}

	var resp *string
	if lessonID != "" {
		resp = &lessonID
	}
	h.respondJSON(w, http.StatusOK, map[string]*string{"lessonId": resp})
}

// SetLastLesson handles PUT /api/progress/courses/{courseId}/last-lesson
// @Summary Set last lesson of a course
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param request body models.SetLessonRequest true "Lesson"
// @Success 200 {object} models.SetLessonRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/last-lesson [put]
func (h *ProgressHandler) SetLastLesson(w http.ResponseWriter, r *http.Request) {
	var req models.SetLessonRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetLastLesson(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), req.LessonID); err != nil {
		h.respondServiceError(w, err, "failed to set last lesson")
		return
	}
	h.respondJSON(w, http.StatusOK, req)
}

// GetCourseProgress handles GET /api/progress/courses/{courseId}
// @Summary Get course completion
// @Description Count completed lessons among the comma-separated lesson IDs
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessons query string false "Comma-separated lesson IDs"
// @Success 200 {object} models.CourseProgress
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId} [get]
func (h *ProgressHandler) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.GetCourseProgress(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), splitList(r.URL.Query().Get("lessons")))
	if err != nil {
		h.respondServiceError(w, err, "failed to get course progress")
		return
	}
	h.respondJSON(w, http.StatusOK, progress)
}

// GetLessonStatus handles GET /api/progress/courses/{courseId}/lessons/{lessonId}/status
// @Summary Get lesson status
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.SetLessonStatusRequest
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/status [get]
func (h *ProgressHandler) GetLessonStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetLessonStatus(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get lesson status")
		return
	}
	h.respondJSON(w, http.StatusOK, models.SetLessonStatusRequest{Status: status})
}

// SetLessonStatus handles PUT /api/progress/courses/{courseId}/lessons/{lessonId}/status
// @Summary Set lesson status
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param request body models.SetLessonStatusRequest true "not_started, in_progress or completed"
// @Success 200 {object} models.SetLessonStatusRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/status [put]
func (h *ProgressHandler) SetLessonStatus(w http.ResponseWriter, r *http.Request) {
	var req models.SetLessonStatusRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.service.SetLessonStatus(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"), req.Status)
	if err != nil {
		h.respondServiceError(w, err, "failed to set lesson status")
		return
	}
	h.respondJSON(w, http.StatusOK, req)
}

// IsBookmarked handles GET /api/progress/courses/{courseId}/lessons/{lessonId}/bookmark
// @Summary Get lesson bookmark
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/bookmark [get]
func (h *ProgressHandler) IsBookmarked(w http.ResponseWriter, r *http.Request) {
	bookmarked, err := h.service.IsBookmarked(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get bookmark")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// ToggleBookmark handles POST /api/progress/courses/{courseId}/lessons/{lessonId}/bookmark
// @Summary Toggle lesson bookmark
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/bookmark [post]
func (h *ProgressHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	bookmarked, err := h.service.ToggleBookmark(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to toggle bookmark")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// GetQuizAnswer handles GET /api/progress/courses/{courseId}/lessons/{lessonId}/quiz/{questionIndex}
// @Summary Get quiz answer
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param questionIndex path int true "Question index"
// @Success 200 {object} models.SetQuizAnswerRequest "answerIndex is null when not answered"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/quiz/{questionIndex} [get]
func (h *ProgressHandler) GetQuizAnswer(w http.ResponseWriter, r *http.Request) {
	questionIndex, err := strconv.Atoi(chi.URLParam(r, "questionIndex"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	answer, err := h.service.GetQuizAnswer(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"), questionIndex)
	if err != nil {
		h.respondServiceError(w, err, "failed to get quiz answer")
		return
	}
	h.respondJSON(w, http.StatusOK, models.SetQuizAnswerRequest{AnswerIndex: answer})
}

// SetQuizAnswer handles PUT /api/progress/courses/{courseId}/lessons/{lessonId}/quiz/{questionIndex}
// @Summary Set quiz answer
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param questionIndex path int true "Question index"
// @Param request body models.SetQuizAnswerRequest true "Chosen answer"
// @Success 200 {object} models.SetQuizAnswerRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/courses/{courseId}/lessons/{lessonId}/quiz/{questionIndex} [put]
func (h *ProgressHandler) SetQuizAnswer(w http.ResponseWriter, r *http.Request) {
	questionIndex, err := strconv.Atoi(chi.URLParam(r, "questionIndex"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	var req models.SetQuizAnswerRequest
	if err := h.decodeJSON(r, &req); err != nil || req.AnswerIndex == nil {
		h.respondError(w, http.StatusBadRequest, "answerIndex is required")
		return
	}

	err = h.service.SetQuizAnswer(r.Context(), h.clientID(r), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"), questionIndex, *req.AnswerIndex)
	if err != nil {
		h.respondServiceError(w, err, "failed to set quiz answer")
		return
	}
	h.respondJSON(w, http.StatusOK, req)
}

// AddUsage handles POST /api/progress/usage
// @Summary Report usage
// @Description Add seconds of usage to the current day
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param request body models.AddUsageRequest true "Seconds, 1..86400"
// @Success 200 {object} models.AddUsageRequest "Day total"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/usage [post]
func (h *ProgressHandler) AddUsage(w http.ResponseWriter, r *http.Request) {
	var req models.AddUsageRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	total, err := h.service.AddDailyUsageSeconds(r.Context(), h.clientID(r), req.Seconds)
	if err != nil {
		h.respondServiceError(w, err, "failed to add usage")
		return
	}
	h.respondJSON(w, http.StatusOK, models.AddUsageRequest{Seconds: total})
}

// GetLastDaysUsage handles GET /api/progress/usage
// @Summary Get usage of the last days
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param days query int false "Number of days, 1..366, default 7"
// @Success 200 {array} models.DailyUsage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/usage [get]
func (h *ProgressHandler) GetLastDaysUsage(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		var err error
		if days, err = strconv.Atoi(raw); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
	}

	usage, err := h.service.GetLastDaysUsage(r.Context(), h.clientID(r), days)
	if err != nil {
		h.respondServiceError(w, err, "failed to get usage")
		return
	}
	h.respondJSON(w, http.StatusOK, usage)
}

// GetDailyUsage handles GET /api/progress/usage/{date}
// @Summary Get usage of a day
// @Tags progress
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {object} models.DailyUsage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress/usage/{date} [get]
func (h *ProgressHandler) GetDailyUsage(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	seconds, err := h.service.GetDailyUsageSeconds(r.Context(), h.clientID(r), date)
	if err != nil {
		h.respondServiceError(w, err, "failed to get usage")
		return
	}
	h.respondJSON(w, http.StatusOK, models.DailyUsage{Date: date, Seconds: seconds})
}

// splitList splits a comma-separated query value, dropping empty entries
func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
