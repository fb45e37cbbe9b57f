package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
)

const (
	dateKeyLayout    = "2006-01-02"
	defaultUsageDays = 7
	maxUsageDays     = 366
	// a single report can not exceed one day
	maxUsageSeconds = 24 * 60 * 60
)

type progressService struct {
	store  *documents.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewProgressService creates a new course progress service
func NewProgressService(store *documents.Store, logger *zap.Logger) *progressService {
	return &progressService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func lessonKey(courseID, lessonID string) string {
	return courseID + ":" + lessonID
}

func quizKey(courseID, lessonID string, questionIndex int) string {
	return courseID + ":" + lessonID + ":" + strconv.Itoa(questionIndex)
}

func (s *progressService) load(ctx context.Context, clientID string) (models.ProgressState, error) {
	return documents.Load(ctx, s.store, clientID, models.ProgressKey, models.NewProgressState)
}

func (s *progressService) update(ctx context.Context, clientID string, fn func(state *models.ProgressState) error) (models.ProgressState, error) {
	return documents.Update(ctx, s.store, clientID, models.ProgressKey, models.NewProgressState, fn)
}

// GetState returns the whole progress document
func (s *progressService) GetState(ctx context.Context, clientID string) (*models.ProgressState, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Reset deletes the progress document
func (s *progressService) Reset(ctx context.Context, clientID string) error {
	return s.store.Delete(ctx, clientID, models.ProgressKey)
}

// SetLastOpenedCourse records the course the client opened last
func (s *progressService) SetLastOpenedCourse(ctx context.Context, clientID, courseID string) error {
	if courseID == "" {
		return fmt.Errorf("%w: course id is required", ErrInvalidArgument)
	}
	_, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		state.LastOpenedCourseID = &courseID
		return nil
	})
	return err
}

// SetLastLesson records the lesson the client opened last within a course
func (s *progressService) SetLastLesson(ctx context.Context, clientID, courseID, lessonID string) error {
	if lessonID == "" {
		return fmt.Errorf("%w: lesson id is required", ErrInvalidArgument)
	}
	_, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		course := state.PerCourse[courseID]
		course.LastLessonID = lessonID
		state.PerCourse[courseID] = course
		return nil
	})
	return err
}

// GetLastLesson returns the last opened lesson of a course, or "" when none
func (s *progressService) GetLastLesson(ctx context.Context, clientID, courseID string) (string, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return "", err
	}
	return state.PerCourse[courseID].LastLessonID, nil
}

// GetLessonStatus returns the lesson status, not_started when it was never set
func (s *progressService) GetLessonStatus(ctx context.Context, clientID, courseID, lessonID string) (models.LessonStatus, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return "", err
	}
	return lessonStatus(&state, courseID, lessonID), nil
}

func lessonStatus(state *models.ProgressState, courseID, lessonID string) models.LessonStatus {
	status := state.PerLesson[lessonKey(courseID, lessonID)].Status
	if status == "" {
		return models.LessonNotStarted
	}
	return status
}

// SetLessonStatus stores the lesson status stamped with the current time
func (s *progressService) SetLessonStatus(ctx context.Context, clientID, courseID, lessonID string, status models.LessonStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	_, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		state.PerLesson[lessonKey(courseID, lessonID)] = models.LessonState{
			Status:    status,
			UpdatedAt: s.now().UnixMilli(),
		}
		return nil
	})
	return err
}

// ToggleBookmark flips the bookmark of a lesson and returns the new value
func (s *progressService) ToggleBookmark(ctx context.Context, clientID, courseID, lessonID string) (bool, error) {
	key := lessonKey(courseID, lessonID)
	state, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		state.Bookmarks[key] = !state.Bookmarks[key]
		return nil
	})
	if err != nil {
		return false, err
	}
	return state.Bookmarks[key], nil
}

// IsBookmarked reports whether a lesson is bookmarked
func (s *progressService) IsBookmarked(ctx context.Context, clientID, courseID, lessonID string) (bool, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return false, err
	}
	return state.Bookmarks[lessonKey(courseID, lessonID)], nil
}

// SetQuizAnswer stores the chosen answer of a quiz question
func (s *progressService) SetQuizAnswer(ctx context.Context, clientID, courseID, lessonID string, questionIndex, answerIndex int) error {
	if questionIndex < 0 || answerIndex < 0 {
		return fmt.Errorf("%w: indexes must not be negative", ErrInvalidArgument)
	}
	_, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		state.QuizAnswers[quizKey(courseID, lessonID, questionIndex)] = models.QuizAnswer{
			AnswerIndex: answerIndex,
			UpdatedAt:   s.now().UnixMilli(),
		}
		return nil
	})
	return err
}

// GetQuizAnswer returns the chosen answer, nil when the question was not answered
func (s *progressService) GetQuizAnswer(ctx context.Context, clientID, courseID, lessonID string, questionIndex int) (*int, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	answer, ok := state.QuizAnswers[quizKey(courseID, lessonID, questionIndex)]
	if !ok {
		return nil, nil
	}
	return &answer.AnswerIndex, nil
}

// AddDailyUsageSeconds adds usage to the current local day and returns the day total
func (s *progressService) AddDailyUsageSeconds(ctx context.Context, clientID string, seconds int) (int, error) {
	if seconds <= 0 || seconds > maxUsageSeconds {
		return 0, fmt.Errorf("%w: seconds must be between 1 and %d", ErrInvalidArgument, maxUsageSeconds)
	}
	key := s.now().Format(dateKeyLayout)
	state, err := s.update(ctx, clientID, func(state *models.ProgressState) error {
		state.DailyUsage[key] += seconds
		return nil
	})
	if err != nil {
		return 0, err
	}
	return state.DailyUsage[key], nil
}

// GetDailyUsageSeconds returns the usage of a day given as YYYY-MM-DD
func (s *progressService) GetDailyUsageSeconds(ctx context.Context, clientID, date string) (int, error) {
	if _, err := time.Parse(dateKeyLayout, date); err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidArgument)
	}
	state, err := s.load(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return state.DailyUsage[date], nil
}

// GetLastDaysUsage returns the usage of the last days ending today, oldest first, zero-filled
func (s *progressService) GetLastDaysUsage(ctx context.Context, clientID string, days int) ([]models.DailyUsage, error) {
	if days == 0 {
		days = defaultUsageDays
	}
	if days < 1 || days > maxUsageDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidArgument, maxUsageDays)
	}

	state, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := make([]models.DailyUsage, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dateKeyLayout)
		result = append(result, models.DailyUsage{Date: key, Seconds: state.DailyUsage[key]})
	}
	return result, nil
}

// GetCourseProgress summarizes completion of the given lessons of a course
func (s *progressService) GetCourseProgress(ctx context.Context, clientID, courseID string, lessonIDs []string) (*models.CourseProgress, error) {
	state, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	progress := &models.CourseProgress{Total: len(lessonIDs)}
	for _, lessonID := range lessonIDs {
		if lessonStatus(&state, courseID, lessonID) == models.LessonCompleted {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percent = int(math.Round(float64(progress.Completed) / float64(progress.Total) * 100))
	}
	return progress, nil
}
