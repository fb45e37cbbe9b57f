package models

// Opportunity is a benefit program a business can apply to
type Opportunity struct {
	ID                       string   `json:"id"`
	Title                    string   `json:"title"`
	Platform                 string   `json:"platform"`
	PublishedAt              string   `json:"published_at"`
	Deadline                 string   `json:"deadline"`
	TargetRegions            []string `json:"target_regions"`
	RequiredFields           []string `json:"required_fields"`
	RequiredActivityKeywords []string `json:"required_activity_keywords"`
	AllowedLegalForms        []string `json:"allowed_legal_forms"`
}

// Eligibility reasons
const (
	ReasonRequiredFieldsMissing = "required_fields_missing"
	ReasonLegalFormNotSupported = "legal_form_not_supported"
	ReasonActivityNotMatched    = "activity_not_matched"
	ReasonEligible              = "eligible"
)

// OpportunityStatus is the eligibility of a profile for an opportunity
type OpportunityStatus struct {
	Opportunity   Opportunity `json:"opportunity"`
	Eligible      bool        `json:"eligible"`
	MissingFields []string    `json:"missing_fields"`
	Reason        string      `json:"reason"`
}

// ScanResponse lists the eligibility for every opportunity
type ScanResponse struct {
	GeneratedAt string              `json:"generated_at"`
	Total       int                 `json:"total"`
	Items       []OpportunityStatus `json:"items"`
}

// ApplicationDraft is an application submitted on behalf of the user
type ApplicationDraft struct {
	ApplicationID string            `json:"application_id"`
	OpportunityID string            `json:"opportunity_id"`
	Title         string            `json:"title"`
	Platform      string            `json:"platform"`
	Status        string            `json:"status"`
	SubmittedAt   string            `json:"submitted_at"`
	Payload       map[string]string `json:"payload"`
}

// SMSEvent asks the user for missing data
type SMSEvent struct {
	ToPhone              string `json:"to_phone"`
	Message              string `json:"message"`
	RelatedOpportunityID string `json:"related_opportunity_id"`
	CreatedAt            string `json:"created_at"`
}

// AnalyzeRequest asks to analyze and submit applications
type AnalyzeRequest struct {
	Profile *BusinessProfile `json:"profile,omitempty"`
	OnlyNew *bool            `json:"only_new,omitempty"`
}

// AnalyzeResponse is the outcome of an analysis
type AnalyzeResponse struct {
	GeneratedAt      string              `json:"generated_at"`
	AutoSubmitted    []ApplicationDraft  `json:"auto_submitted"`
	PendingUserInput []OpportunityStatus `json:"pending_user_input"`
	SMSQueue         []SMSEvent          `json:"sms_queue"`
}
