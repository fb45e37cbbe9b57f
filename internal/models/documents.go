package models

// Fixed document keys of a client namespace
const (
	SessionKey  = "bn_session"
	UserKey     = "bn_user"
	ProgressKey = "bn_course_progress"
	ProfileKey  = "user_profile"
)
