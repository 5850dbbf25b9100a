package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/events"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// Testimonial is a static endorsement entry.
type Testimonial struct {
	ID      int    `json:"id"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Skill is a static proficiency entry.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

// Project is a static showcase entry.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Tech        []string `json:"tech"`
}

var testimonials = []Testimonial{
	{ID: 1, Quote: "The realtime sync layer handled a thousand daily sessions without losing a write.", Author: "Tech Lead", Company: "Previous Employer", Role: "Collaboration Platform"},
	{ID: 2, Quote: "API response times dropped 40% after the query rework.", Author: "Senior Developer", Company: "Previous Employer", Role: "Backend Team"},
	{ID: 3, Quote: "Eighty features shipped with zero critical incidents.", Author: "Project Manager", Company: "Previous Employer", Role: "Automation Platform"},
	{ID: 4, Quote: "The support chatbot cut repetitive queries by 40% in its pilot.", Author: "Operations Lead", Company: "Previous Employer", Role: "Data Team"},
	{ID: 5, Quote: "Over a hundred PRs reviewed, and the codebase is genuinely better for it.", Author: "Dev Team", Company: "Previous Employer", Role: "Code Quality"},
}

var skills = []Skill{
	{Name: "Go", Level: 92, Category: "Backend"},
	{Name: "TypeScript", Level: 90, Category: "Frontend"},
	{Name: "Vue.js 3", Level: 95, Category: "Frontend"},
	{Name: "React", Level: 70, Category: "Frontend", Note: "Learning fast!"},
	{Name: "Python", Level: 92, Category: "Backend"},
	{Name: "PostgreSQL", Level: 88, Category: "Database"},
	{Name: "Redis", Level: 80, Category: "Database"},
	{Name: "WebSocket", Level: 90, Category: "Real-Time"},
	{Name: "Git", Level: 95, Category: "Tools"},
	{Name: "Docker", Level: 80, Category: "DevOps"},
}

var projects = []Project{
	{ID: 1, Title: "Real-Time Collaboration System", Description: "WebSocket node-locking preventing data conflicts in multi-user workflows", Impact: "1,000+ daily sessions with zero data loss", Tech: []string{"WebSocket", "Vue.js 3", "TypeScript", "Go"}},
	{ID: 2, Title: "Network Automation SDK", Description: "Client SDK for network service automation across client environments", Impact: "Reduced manual operations by 60%", Tech: []string{"Go", "REST APIs", "Network Protocols"}},
	{ID: 3, Title: "AI Support Assistant", Description: "Conversational agent with prompt engineering and context management", Impact: "40% fewer repetitive support queries", Tech: []string{"LLM Integration", "Vue.js", "TypeScript"}},
}

// Experience summarizes shipped-work numbers.
type Experience struct {
	Years             int `json:"years"`
	FeaturesShipped   int `json:"features_shipped"`
	CriticalIncidents int `json:"critical_incidents"`
	PRsReviewed       int `json:"prs_reviewed"`
	DailyUsersServed  int `json:"daily_users_served"`
}

// Availability describes current work availability.
type Availability struct {
	Status          string   `json:"status"`
	WorkPreferences []string `json:"work_preferences"`
	Location        string   `json:"location"`
	Languages       []string `json:"languages"`
}

// PortfolioStats aggregates the static portfolio numbers in one payload.
type PortfolioStats struct {
	Experience   Experience   `json:"experience"`
	Highlights   []string     `json:"highlights"`
	Availability Availability `json:"availability"`
	FunFacts     []string     `json:"fun_facts"`
}

var portfolioStats = PortfolioStats{
	Experience: Experience{
		Years:             3,
		FeaturesShipped:   80,
		CriticalIncidents: 0,
		PRsReviewed:       100,
		DailyUsersServed:  1000,
	},
	Highlights: []string{
		"40% faster API response times",
		"50% reduction in query times",
		"60% reduction in manual operations",
		"40% fewer support queries with AI chatbot",
		"95%+ sprint completion rate",
	},
	Availability: Availability{
		Status:          "Available Immediately",
		WorkPreferences: []string{"Hybrid", "Remote", "On-site"},
		Location:        "Open to relocation",
		Languages:       []string{"English (Professional)", "French (Professional)"},
	},
	FunFacts: []string{
		"Debugging is basically improv: 'yes, and...' for code",
		"Management experience means shipping AND communicating",
		"Zero critical incidents isn't luck, it's attention to detail",
	},
}

// PortfolioService serves the static portfolio content, tracks page
// views through the engagement store, and accepts contact submissions.
type PortfolioService struct {
	engagement repository.EngagementRepository
	messages   repository.ContactMessageRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPortfolioService constructs the service.
func NewPortfolioService(engagement repository.EngagementRepository, messages repository.ContactMessageRepository, dispatcher events.Dispatcher, logger *zap.Logger) *PortfolioService {
	return &PortfolioService{
		engagement: engagement,
		messages:   messages,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Testimonials returns the endorsement list, shuffled when requested.
func (s *PortfolioService) Testimonials(randomOrder bool) []Testimonial {
	result := make([]Testimonial, len(testimonials))
	copy(result, testimonials)
	if randomOrder {
		rand.Shuffle(len(result), func(i, j int) {
			result[i], result[j] = result[j], result[i]
		})
	}
	return result
}

// RandomTestimonial picks a single endorsement.
func (s *PortfolioService) RandomTestimonial() Testimonial {
	return testimonials[rand.Intn(len(testimonials))]
}

// Skills returns skills, optionally filtered by category, plus the
// category list and the average proficiency of the filtered set.
func (s *PortfolioService) Skills(category string) ([]Skill, []string, float64) {
	filtered := make([]Skill, 0, len(skills))
	categorySet := make(map[string]struct{})
	for _, skill := range skills {
		categorySet[skill.Category] = struct{}{}
		if category == "" || strings.EqualFold(skill.Category, category) {
			filtered = append(filtered, skill)
		}
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}

	average := 0.0
	if len(filtered) > 0 {
		sum := 0
		for _, skill := range filtered {
			sum += skill.Level
		}
		average = float64(sum) / float64(len(filtered))
	}
	return filtered, categories, average
}

// Projects returns the showcase entries and the union of techs used.
func (s *PortfolioService) Projects() ([]Project, []string) {
	techSet := make(map[string]struct{})
	for _, p := range projects {
		for _, tech := range p.Tech {
			techSet[tech] = struct{}{}
		}
	}
	techs := make([]string, 0, len(techSet))
	for t := range techSet {
		techs = append(techs, t)
	}
	return projects, techs
}

// Stats returns the aggregated portfolio numbers in a single payload.
func (s *PortfolioService) Stats() PortfolioStats {
	return portfolioStats
}

// TrackView records a page view and reports whether the session was new.
func (s *PortfolioService) TrackView(ctx context.Context, sessionID string) (repository.ViewStats, bool, error) {
	stats, newVisitor, err := s.engagement.IncrementViews(ctx, sessionID)
	if err != nil {
		return repository.ViewStats{}, false, apperrors.MapError(err)
	}
	return stats, newVisitor, nil
}

// Views returns the current counters.
func (s *PortfolioService) Views(ctx context.Context) (repository.ViewStats, error) {
	stats, err := s.engagement.GetViews(ctx)
	if err != nil {
		return repository.ViewStats{}, apperrors.MapError(err)
	}
	return stats, nil
}

// ContactSubmission is a contact form submission.
type ContactSubmission struct {
	Name    string
	Email   string
	Company *string
	Message string
}

// SubmitContact stores the message and emits a ContactSubmitted event.
// The email notification is a best-effort subscriber; its failure never
// fails the submission.
func (s *PortfolioService) SubmitContact(ctx context.Context, input ContactSubmission) (*domain.ContactMessage, error) {
	if input.Name == "" || input.Message == "" {
		return nil, apperrors.NewValidationError("name and message required", nil)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, apperrors.NewValidationError("valid email required", map[string]any{"field": "email"})
	}

	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Message: input.Message,
		Status:  domain.ContactMessageReceived,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactSubmitted,
			Timestamp: time.Now().UTC(),
			Payload: events.ContactSubmittedPayload{
				MessageID:   msg.ID,
				Name:        msg.Name,
				Email:       msg.Email,
				Company:     msg.Company,
				Message:     msg.Message,
				SubmittedAt: msg.SubmittedAt,
			},
		})
	}
	return msg, nil
}

// Messages returns the inbox and the unread count.
func (s *PortfolioService) Messages(ctx context.Context) ([]domain.ContactMessage, int, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	unread := 0
	for _, m := range msgs {
		if m.Status == domain.ContactMessageReceived {
			unread++
		}
	}
	return msgs, unread, nil
}
