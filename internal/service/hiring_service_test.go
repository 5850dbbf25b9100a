package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

func TestBuildDashboardCounts(t *testing.T) {
	apps := []domain.Application{
		{Company: "A", Status: domain.ApplicationStatusApplied, JobType: "full-time", DateSent: "2026-08-03"},
		{Company: "B", Status: domain.ApplicationStatusResponse, JobType: "full-time", DateSent: "2026-08-10"},
		{Company: "C", Status: domain.ApplicationStatusInterview, JobType: "contract", DateSent: "2026-08-17"},
		{Company: "D", Status: domain.ApplicationStatusOffer, JobType: "full-time", DateSent: "2026-08-24"},
		{Company: "E", Status: domain.ApplicationStatusRejected, JobType: "contract", DateSent: "2026-08-24"},
		{Company: "F", Status: domain.ApplicationStatusApplied, JobType: "full-time"},
	}

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	stats := BuildDashboard(apps, now)

	assert.Equal(t, 6, stats.TotalSent)
	assert.Equal(t, 4, stats.TotalResponses)
	assert.Equal(t, 1, stats.ActiveInterviews)
	assert.Equal(t, 1, stats.OffersReceived)
	assert.Equal(t, 66.7, stats.ResponseRate)
	assert.Equal(t, map[string]int{
		"applied":   2,
		"response":  1,
		"interview": 1,
		"offer":     1,
		"rejected":  1,
	}, stats.StatusBreakdown)
	assert.Equal(t, map[string]int{"full-time": 4, "contract": 2}, stats.ByJobType)
}

func TestBuildDashboardWeeklyWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	apps := []domain.Application{
		{DateSent: "2026-08-31"},
		{DateSent: "2026-08-30"},
		{DateSent: "2026-08-24"},
		{DateSent: "2020-01-06"}, // far outside the window
	}

	stats := BuildDashboard(apps, now)

	require.Len(t, stats.WeeklyApplications, 8)
	last := stats.WeeklyApplications[7]
	assert.Equal(t, "2026-W36", last.Week)
	assert.Equal(t, 1, last.Count)
	assert.Equal(t, "2026-W35", stats.WeeklyApplications[6].Week)
	assert.Equal(t, 2, stats.WeeklyApplications[6].Count)
	assert.Equal(t, "2026-W29", stats.WeeklyApplications[0].Week)
}

func TestBuildDashboardCumulative(t *testing.T) {
	apps := []domain.Application{
		{DateSent: "2026-08-10"},
		{DateSent: "2026-08-01"},
		{DateSent: "sometime in july"}, // unparsable dates still count
		{DateSent: ""},                 // blank dates do not
	}

	stats := BuildDashboard(apps, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	require.Len(t, stats.CumulativeApplications, 3)
	assert.Equal(t, "2026-08-01", stats.CumulativeApplications[0].Date)
	assert.Equal(t, 1, stats.CumulativeApplications[0].Total)
	assert.Equal(t, "2026-08-10", stats.CumulativeApplications[1].Date)
	assert.Equal(t, 2, stats.CumulativeApplications[1].Total)
	assert.Equal(t, "sometime in july", stats.CumulativeApplications[2].Date)
	assert.Equal(t, 3, stats.CumulativeApplications[2].Total)
}

func TestBuildDashboardEmpty(t *testing.T) {
	stats := BuildDashboard(nil, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, stats.TotalSent)
	assert.Equal(t, 0.0, stats.ResponseRate)
	assert.Len(t, stats.WeeklyApplications, 8)
	assert.Empty(t, stats.CumulativeApplications)
}
