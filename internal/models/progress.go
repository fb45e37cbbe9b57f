package models

// LessonStatus is the completion state of a lesson
type LessonStatus string

const (
	LessonNotStarted LessonStatus = "not_started"
	LessonInProgress LessonStatus = "in_progress"
	LessonCompleted  LessonStatus = "completed"
)

// IsValid reports whether the status is a known lesson status
func (s LessonStatus) IsValid() bool {
	return s == LessonNotStarted || s == LessonInProgress || s == LessonCompleted
}

// CourseState holds per-course navigation state
type CourseState struct {
	LastLessonID string `json:"lastLessonId,omitempty"`
}

// LessonState holds the status of a lesson; UpdatedAt is in Unix milliseconds
type LessonState struct {
	Status    LessonStatus `json:"status"`
	UpdatedAt int64        `json:"updatedAt"`
}

// QuizAnswer holds a chosen answer; UpdatedAt is in Unix milliseconds
type QuizAnswer struct {
	AnswerIndex int   `json:"answerIndex"`
	UpdatedAt   int64 `json:"updatedAt"`
}

// ProgressState is the course progress document of a client.
//
// PerLesson and Bookmarks are keyed by "courseId:lessonId",
// QuizAnswers by "courseId:lessonId:questionIndex" and DailyUsage by "YYYY-MM-DD".
type ProgressState struct {
	LastOpenedCourseID *string                `json:"lastOpenedCourseId"`
	PerCourse          map[string]CourseState `json:"perCourse"`
	PerLesson          map[string]LessonState `json:"perLesson"`
	Bookmarks          map[string]bool        `json:"bookmarks"`
	QuizAnswers        map[string]QuizAnswer  `json:"quizAnswers"`
	DailyUsage         map[string]int         `json:"dailyUsage"`
}

// NewProgressState returns the default progress document
func NewProgressState() ProgressState {
	return ProgressState{
		PerCourse:   map[string]CourseState{},
		PerLesson:   map[string]LessonState{},
		Bookmarks:   map[string]bool{},
		QuizAnswers: map[string]QuizAnswer{},
		DailyUsage:  map[string]int{},
	}
}

// Normalize replaces maps decoded as null with empty maps
func (p *ProgressState) Normalize() {
	if p.PerCourse == nil {
		p.PerCourse = map[string]CourseState{}
	}
	if p.PerLesson == nil {
		p.PerLesson = map[string]LessonState{}
	}
	if p.Bookmarks == nil {
		p.Bookmarks = map[string]bool{}
	}
	if p.QuizAnswers == nil {
		p.QuizAnswers = map[string]QuizAnswer{}
	}
	if p.DailyUsage == nil {
		p.DailyUsage = map[string]int{}
	}
}

// CourseProgress is the completion summary of a course
type CourseProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

// DailyUsage is the usage of a single day
type DailyUsage struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
}

// SetLessonStatusRequest represents a lesson status update
type SetLessonStatusRequest struct {
	Status LessonStatus `json:"status"`
}

// SetCourseRequest represents a last opened course update
type SetCourseRequest struct {
	CourseID string `json:"courseId"`
}

// SetLessonRequest represents a last lesson update
type SetLessonRequest struct {
	LessonID string `json:"lessonId"`
}

// SetQuizAnswerRequest represents a quiz answer
type SetQuizAnswerRequest struct {
	AnswerIndex *int `json:"answerIndex"`
}

// AddUsageRequest represents usage seconds reported by the client
type AddUsageRequest struct {
	Seconds int `json:"seconds"`
}
