package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	entrySvc := NewEntryService(db, 0)
	reportSvc := NewReportService(db)
	artist := createUser(t, db, "artist", models.RoleArtist)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	createEntry(t, entrySvc, actorFor(artist), nil)
	approved := createEntry(t, entrySvc, actorFor(admin), nil)
	_, err := reportSvc.Create(&dto.CreateReportRequest{EntryID: approved.ID, Reason: "spam"}, actorFor(artist))
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalEntries)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.PendingReports)
	assert.EqualValues(t, 1, stats.ByStatus[models.EntryStatusPending])
	assert.EqualValues(t, 1, stats.ByStatus[models.EntryStatusApproved])
	// Only approved entries count toward the by-type breakdown.
	assert.EqualValues(t, 1, stats.ByType["rock_art"])
}

func TestDashboardRecentActivity(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	entrySvc := NewEntryService(db, 0)
	artist := createUser(t, db, "artist", models.RoleArtist)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	entry := createEntry(t, entrySvc, actorFor(artist), nil)
	require.NoError(t, entrySvc.Approve(entry.ID, actorFor(admin)))

	items, err := svc.RecentActivity(10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	actions := []string{items[0].Action, items[1].Action}
	assert.Contains(t, actions, models.ActivitySubmitted)
	assert.Contains(t, actions, models.ActivityApproved)
	for _, item := range items {
		assert.NotEmpty(t, item.Username)
		assert.NotEmpty(t, item.CreatedAt)
	}

	// Out-of-range limits fall back to the default.
	items, err = svc.RecentActivity(-5)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
