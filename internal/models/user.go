package models

// Plan is the subscription tier of a user
type Plan string

const (
	PlanFreemium Plan = "freemium"
	PlanPremium  Plan = "premium"
)

// IsValid reports whether the plan is a known tier
func (p Plan) IsValid() bool {
	return p == PlanFreemium || p == PlanPremium
}

// UserRecord is the single account stored in a client namespace
type UserRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Plan         Plan   `json:"plan,omitempty"`
}

// Normalize fills fields missing from older stored records
func (u *UserRecord) Normalize() {
	if u.Plan == "" {
		u.Plan = PlanFreemium
	}
}

// UserResponse is a user record without credentials
type UserResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Plan      Plan   `json:"plan"`
}

// ToResponse strips the password hash
func (u *UserRecord) ToResponse() UserResponse {
	return UserResponse{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Plan:      u.Plan,
	}
}

// RegisterRequest represents a registration form
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents a login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetPlanRequest represents a plan change
type SetPlanRequest struct {
	Plan Plan `json:"plan"`
}

// AuthResponse is returned after a successful registration or login
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// Session is the authentication state of a client namespace
type Session struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}
