package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/tasks"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const unknownPhone = "unknown"

// opportunityFeed is the list of programs open for automatic applications
var opportunityFeed = []models.Opportunity{
	{
		ID:                       "app-2026-001",
		Title:                    "Ayollar tadbirkorligi uchun subsidiya",
		Platform:                 "my.gov.uz",
		PublishedAt:              "2026-02-11T09:00:00Z",
		Deadline:                 "2026-03-15",
		TargetRegions:            []string{"all"},
		RequiredFields:           []string{"businessName", "tin", "legalForm", "directorName", "phone", "activityType"},
		RequiredActivityKeywords: []string{"ishlab chiqarish", "xizmat", "savdo"},
		AllowedLegalForms:        []string{"YTT", "MCHJ"},
	},
	{
		ID:                       "app-2026-002",
		Title:                    "Eksportyorlar uchun aylanma mablag' krediti",
		Platform:                 "lex.uz",
		PublishedAt:              "2026-02-12T07:30:00Z",
		Deadline:                 "2026-02-28",
		TargetRegions:            []string{"all"},
		RequiredFields:           []string{"businessName", "tin", "legalForm", "phone", "email", "address", "activityType"},
		RequiredActivityKeywords: []string{"eksport", "logistika", "ishlab chiqarish"},
		AllowedLegalForms:        []string{"MCHJ"},
	},
	{
		ID:                       "app-2026-003",
		Title:                    "Yangi YTT uchun soliq imtiyozi arizasi",
		Platform:                 "soliq.uz",
		PublishedAt:              "2026-02-10T13:00:00Z",
		Deadline:                 "2026-04-01",
		TargetRegions:            []string{"all"},
		RequiredFields:           []string{"businessName", "tin", "legalForm", "phone"},
		RequiredActivityKeywords: []string{},
		AllowedLegalForms:        []string{"YTT"},
	},
}

// TaskEnqueuer is the interface that wraps the background task queue
type TaskEnqueuer interface {
	// Method EnqueueContext puts the task into the queue.
	//
	// If the task can not be enqueued, the error will be returned together with "nil" value.
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type applicationService struct {
	store    *documents.Store
	enqueuer TaskEnqueuer
	logger   *zap.Logger
	now      func() time.Time
}

// NewApplicationService creates a new automatic application service.
// A nil enqueuer disables notifications.
func NewApplicationService(store *documents.Store, enqueuer TaskEnqueuer, logger *zap.Logger) *applicationService {
	return &applicationService{
		store:    store,
		enqueuer: enqueuer,
		logger:   logger,
		now:      time.Now,
	}
}

// Scan reports the eligibility of the profile for every opportunity of the feed
func (s *applicationService) Scan(ctx context.Context, profile *models.BusinessProfile) *models.ScanResponse {
	items := make([]models.OpportunityStatus, 0, len(opportunityFeed))
	for _, opp := range opportunityFeed {
		items = append(items, evaluateOpportunity(profile, opp))
	}

	return &models.ScanResponse{
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Total:       len(items),
		Items:       items,
	}
}

// Analyze submits drafts for eligible opportunities and asks the user for the data missing for the rest.
//
// When the request carries no profile or a blank one, the stored business profile of the client is used.
// Notifications are queued in the background; a queue failure does not fail the analysis.
func (s *applicationService) Analyze(ctx context.Context, clientID string, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	profile := req.Profile
	if profile == nil || profile.IsEmpty() {
		stored, err := documents.Load(ctx, s.store, clientID, models.ProfileKey, models.NewBusinessProfile)
		if err != nil {
			return nil, err
		}
		profile = &stored
	}

	now := s.now().UTC()
	nowISO := now.Format(time.RFC3339)
	resp := &models.AnalyzeResponse{
		GeneratedAt:      nowISO,
		AutoSubmitted:    []models.ApplicationDraft{},
		PendingUserInput: []models.OpportunityStatus{},
		SMSQueue:         []models.SMSEvent{},
	}

	phone := strings.TrimSpace(profile.Phone)
	if phone == "" {
		phone = unknownPhone
	}

	for _, opp := range opportunityFeed {
		status := evaluateOpportunity(profile, opp)
		if status.Eligible {
			resp.AutoSubmitted = append(resp.AutoSubmitted, models.ApplicationDraft{
				ApplicationID: fmt.Sprintf("draft-%s-%d", opp.ID, now.Unix()),
				OpportunityID: opp.ID,
				Title:         opp.Title,
				Platform:      opp.Platform,
				Status:        "submitted",
				SubmittedAt:   nowISO,
				Payload:       applicationPayload(profile),
			})
			continue
		}

		resp.PendingUserInput = append(resp.PendingUserInput, status)

		missing := status.Reason
		if len(status.MissingFields) > 0 {
			missing = strings.Join(status.MissingFields, ", ")
		}
		resp.SMSQueue = append(resp.SMSQueue, models.SMSEvent{
			ToPhone:              phone,
			Message:              fmt.Sprintf("Auto ariza uchun qo'shimcha ma'lumot kerak: %s. Yetishmayotgan: %s.", opp.Title, missing),
			RelatedOpportunityID: opp.ID,
			CreatedAt:            nowISO,
		})
	}

	s.notify(ctx, clientID, profile, resp)

	return resp, nil
}

// notify queues the SMS events and an email summary
func (s *applicationService) notify(ctx context.Context, clientID string, profile *models.BusinessProfile, resp *models.AnalyzeResponse) {
	if s.enqueuer == nil {
		return
	}

	for _, event := range resp.SMSQueue {
		if event.ToPhone == unknownPhone {
			continue
		}
		task, err := tasks.NewSMSTask(tasks.SMSPayload{
			To:            event.ToPhone,
			Message:       event.Message,
			OpportunityID: event.RelatedOpportunityID,
		})
		if err == nil {
			_, err = s.enqueuer.EnqueueContext(ctx, task)
		}
		if err != nil {
			s.logger.Warn("failed to enqueue sms notification",
				zap.String("client_id", clientID),
				zap.String("opportunity_id", event.RelatedOpportunityID),
				zap.Error(err),
			)
		}
	}

	email := strings.TrimSpace(profile.Email)
	if email == "" {
		return
	}
	task, err := tasks.NewEmailTask(tasks.EmailPayload{
		To:      email,
		Subject: "Avtomatik arizalar natijasi",
		Body:    summaryEmailBody(resp),
	})
	if err == nil {
		_, err = s.enqueuer.EnqueueContext(ctx, task)
	}
	if err != nil {
		s.logger.Warn("failed to enqueue email notification", zap.String("client_id", clientID), zap.Error(err))
	}
}

func summaryEmailBody(resp *models.AnalyzeResponse) string {
	submitted := make([]string, 0, len(resp.AutoSubmitted))
	for _, draft := range resp.AutoSubmitted {
		submitted = append(submitted, fmt.Sprintf("%s (%s)", draft.Title, draft.Platform))
	}
	pending := make([]string, 0, len(resp.SMSQueue))
	for _, event := range resp.SMSQueue {
		pending = append(pending, event.Message)
	}
	return tasks.SummaryEmailBody(submitted, pending)
}

// evaluateOpportunity checks required fields, then the legal form, then the activity
func evaluateOpportunity(profile *models.BusinessProfile, opp models.Opportunity) models.OpportunityStatus {
	status := models.OpportunityStatus{
		Opportunity:   opp,
		MissingFields: []string{},
	}

	for _, field := range opp.RequiredFields {
		if _, ok := profile.Field(field); !ok {
			status.MissingFields = append(status.MissingFields, field)
		}
	}

	switch {
	case len(status.MissingFields) > 0:
		status.Reason = models.ReasonRequiredFieldsMissing
	case !isLegalFormAllowed(profile.LegalForm, opp.AllowedLegalForms):
		status.Reason = models.ReasonLegalFormNotSupported
	case !isActivityMatched(profile.ActivityType, opp.RequiredActivityKeywords):
		status.Reason = models.ReasonActivityNotMatched
	default:
		status.Eligible = true
		status.Reason = models.ReasonEligible
	}
	return status
}

func isLegalFormAllowed(legalForm string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, form := range allowed {
		if strings.EqualFold(form, strings.TrimSpace(legalForm)) {
			return true
		}
	}
	return false
}

func isActivityMatched(activity string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(activity)
	for _, keyword := range keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func applicationPayload(profile *models.BusinessProfile) map[string]string {
	return map[string]string{
		"business_name": profile.BusinessName,
		"tin":           profile.TIN,
		"legal_form":    profile.LegalForm,
		"activity_type": profile.ActivityType,
		"director_name": profile.DirectorName,
		"phone":         profile.Phone,
		"email":         profile.Email,
		"address":       profile.Address,
		"submitted_by":  profile.Name,
	}
}
