package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// HiringService manages the admin-gated hiring tracker and its public
// read surface.
type HiringService struct {
	applications repository.ApplicationRepository
	contacts     repository.RecruiterContactRepository
	banner       repository.BannerRepository
}

// HiringDependencies bundles repositories for the hiring service.
type HiringDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	ContactRepo     repository.RecruiterContactRepository
	BannerRepo      repository.BannerRepository
}

// NewHiringService constructs the service.
func NewHiringService(deps HiringDependencies) *HiringService {
	return &HiringService{
		applications: deps.ApplicationRepo,
		contacts:     deps.ContactRepo,
		banner:       deps.BannerRepo,
	}
}

// ApplicationInput describes application creation payload.
type ApplicationInput struct {
	Company  string
	Role     string
	JobType  string
	Status   domain.ApplicationStatus
	DateSent string
	Notes    string
}

// ApplicationUpdateInput carries partial application updates.
type ApplicationUpdateInput struct {
	Company  *string
	Role     *string
	JobType  *string
	Status   *domain.ApplicationStatus
	DateSent *string
	Notes    *string
}

// ContactInput describes recruiter contact creation payload.
type ContactInput struct {
	Name    string
	Company string
	Email   string
	Notes   string
}

// ContactUpdateInput carries partial contact updates.
type ContactUpdateInput struct {
	Name    *string
	Company *string
	Email   *string
	Notes   *string
}

// BannerInput carries partial banner updates.
type BannerInput struct {
	Message  *string
	IsActive *bool
}

// WeeklyDataPoint counts applications sent in one ISO week.
type WeeklyDataPoint struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// CumulativeDataPoint is a running total of applications by date.
type CumulativeDataPoint struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// DashboardStats aggregates the hiring pipeline for the public dashboard.
type DashboardStats struct {
	TotalSent              int                 `json:"total_sent"`
	TotalResponses         int                 `json:"total_responses"`
	ResponseRate           float64             `json:"response_rate"`
	ActiveInterviews       int                 `json:"active_interviews"`
	OffersReceived         int                 `json:"offers_received"`
	StatusBreakdown        map[string]int      `json:"status_breakdown"`
	WeeklyApplications     []WeeklyDataPoint   `json:"weekly_applications"`
	CumulativeApplications []CumulativeDataPoint `json:"cumulative_applications"`
	ByJobType              map[string]int      `json:"by_job_type"`
}

// ListApplications returns all applications, newest sent first.
func (s *HiringService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	result, err := s.applications.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// CreateApplication stores a new application record.
func (s *HiringService) CreateApplication(ctx context.Context, input ApplicationInput) (*domain.Application, error) {
	if input.Company == "" || input.Role == "" {
		return nil, apperrors.NewValidationError("company and role required", nil)
	}
	app := &domain.Application{
		Company:  input.Company,
		Role:     input.Role,
		JobType:  input.JobType,
		Status:   input.Status,
		DateSent: input.DateSent,
		Notes:    input.Notes,
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}
	return app, nil
}

// UpdateApplication applies the supplied fields to an application.
func (s *HiringService) UpdateApplication(ctx context.Context, id string, input ApplicationUpdateInput) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if input.Company != nil {
		app.Company = *input.Company
	}
	if input.Role != nil {
		app.Role = *input.Role
	}
	if input.JobType != nil {
		app.JobType = *input.JobType
	}
	if input.Status != nil {
		app.Status = *input.Status
	}
	if input.DateSent != nil {
		app.DateSent = *input.DateSent
	}
	if input.Notes != nil {
		app.Notes = *input.Notes
	}

	if err := s.applications.Update(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}
	return app, nil
}

// DeleteApplication removes an application record.
func (s *HiringService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.applications.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("application", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListContacts returns all recruiter contacts. Public read path.
func (s *HiringService) ListContacts(ctx context.Context) ([]domain.RecruiterContact, error) {
	result, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// CreateContact stores a new recruiter contact.
func (s *HiringService) CreateContact(ctx context.Context, input ContactInput) (*domain.RecruiterContact, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	contact := &domain.RecruiterContact{
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Notes:   input.Notes,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.MapError(err)
	}
	return contact, nil
}

// UpdateContact applies the supplied fields to a recruiter contact.
func (s *HiringService) UpdateContact(ctx context.Context, id string, input ContactUpdateInput) (*domain.RecruiterContact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("contact", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Company != nil {
		contact.Company = *input.Company
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Notes != nil {
		contact.Notes = *input.Notes
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, apperrors.MapError(err)
	}
	return contact, nil
}

// DeleteContact removes a recruiter contact.
func (s *HiringService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("contact", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// GetActiveBanner returns the active status banner, or nil when none is
// active.
func (s *HiringService) GetActiveBanner(ctx context.Context) (*domain.StatusBanner, error) {
	banner, err := s.banner.GetActive(ctx)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.MapError(err)
	}
	return banner, nil
}

// UpsertBanner creates the banner row on first write and patches it
// afterwards.
func (s *HiringService) UpsertBanner(ctx context.Context, input BannerInput) (*domain.StatusBanner, error) {
	banner, err := s.banner.Get(ctx)
	if err != nil {
		if err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
		message := ""
		if input.Message != nil {
			message = *input.Message
		}
		banner = &domain.StatusBanner{Message: message, IsActive: true}
		if err := s.banner.Create(ctx, banner); err != nil {
			return nil, apperrors.MapError(err)
		}
		return banner, nil
	}

	if input.Message != nil {
		banner.Message = *input.Message
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if err := s.banner.Update(ctx, banner); err != nil {
		return nil, apperrors.MapError(err)
	}
	return banner, nil
}

// Dashboard aggregates pipeline statistics over all applications.
func (s *HiringService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	stats := BuildDashboard(apps, time.Now())
	return &stats, nil
}

var responseStatuses = map[domain.ApplicationStatus]struct{}{
	domain.ApplicationStatusResponse:  {},
	domain.ApplicationStatusInterview: {},
	domain.ApplicationStatusOffer:     {},
	domain.ApplicationStatusRejected:  {},
}

// BuildDashboard computes dashboard statistics from an application set.
// Split out from Dashboard so the arithmetic is testable without a store.
func BuildDashboard(apps []domain.Application, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalSent:       len(apps),
		StatusBreakdown: make(map[string]int),
		ByJobType:       make(map[string]int),
	}

	for _, app := range apps {
		if _, ok := responseStatuses[app.Status]; ok {
			stats.TotalResponses++
		}
		if app.Status == domain.ApplicationStatusInterview {
			stats.ActiveInterviews++
		}
		if app.Status == domain.ApplicationStatusOffer {
			stats.OffersReceived++
		}
		stats.StatusBreakdown[string(app.Status)]++
		stats.ByJobType[app.JobType]++
	}

	if stats.TotalSent > 0 {
		rate := float64(stats.TotalResponses) / float64(stats.TotalSent) * 100
		stats.ResponseRate = math.Round(rate*10) / 10
	}

	// Weekly counts over the last 8 ISO weeks; rows with unparsable
	// dates are skipped rather than failing the dashboard.
	weekly := make(map[string]int)
	var sentDates []string
	for _, app := range apps {
		if app.DateSent == "" {
			continue
		}
		sentDates = append(sentDates, app.DateSent)
		d, err := time.Parse("2006-01-02", app.DateSent)
		if err != nil {
			continue
		}
		weekly[weekLabel(d)]++
	}

	for i := 7; i >= 0; i-- {
		label := weekLabel(now.AddDate(0, 0, -7*i))
		stats.WeeklyApplications = append(stats.WeeklyApplications, WeeklyDataPoint{
			Week:  label,
			Count: weekly[label],
		})
	}

	sort.Strings(sentDates)
	for i, d := range sentDates {
		stats.CumulativeApplications = append(stats.CumulativeApplications, CumulativeDataPoint{
			Date:  d,
			Total: i + 1,
		})
	}

	return stats
}

func weekLabel(d time.Time) string {
	_, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", d.Year(), week)
}
