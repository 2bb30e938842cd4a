package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	entrySvc := NewEntryService(db, 0)
	artist := createUser(t, db, "artist", models.RoleArtist)
	reporter := createUser(t, db, "reporter", models.RoleResearcher)

	entry := createEntry(t, entrySvc, actorFor(artist), nil)

	report, err := svc.Create(&dto.CreateReportRequest{
		EntryID: entry.ID,
		Reason:  "incorrect_location",
		Details: "The site is on the other side of the river.",
	}, actorFor(reporter))
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, reporter.ID, report.ReporterUserID)
	assert.Equal(t, entry.ID, report.EntryID)
}

func TestReportCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	reporter := createUser(t, db, "reporter", models.RoleResearcher)

	_, err := svc.Create(&dto.CreateReportRequest{EntryID: 1, Reason: "spam"}, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	var ve ValidationError
	_, err = svc.Create(&dto.CreateReportRequest{Reason: "spam"}, actorFor(reporter))
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(&dto.CreateReportRequest{EntryID: 1, Reason: " "}, actorFor(reporter))
	assert.ErrorAs(t, err, &ve)

	// Reports against entries that do not exist are refused.
	_, err = svc.Create(&dto.CreateReportRequest{EntryID: 9999, Reason: "spam"}, actorFor(reporter))
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestReportListAndAction(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	entrySvc := NewEntryService(db, 0)
	artist := createUser(t, db, "artist", models.RoleArtist)
	reporter := createUser(t, db, "reporter", models.RoleResearcher)

	entry := createEntry(t, entrySvc, actorFor(artist), nil)
	report, err := svc.Create(&dto.CreateReportRequest{EntryID: entry.ID, Reason: "spam"}, actorFor(reporter))
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateReportRequest{EntryID: entry.ID, Reason: "offensive"}, actorFor(reporter))
	require.NoError(t, err)

	reports, total, err := svc.List("", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, reports, 2)

	require.NoError(t, svc.Action(report.ID, &dto.ActionReportRequest{Status: models.ReportStatusDismissed, AdminNote: "Not spam"}))

	var stored models.ContentReport
	require.NoError(t, db.First(&stored, report.ID).Error)
	assert.Equal(t, models.ReportStatusDismissed, stored.Status)
	assert.Equal(t, "Not spam", stored.AdminNote)

	// Status filter narrows the queue.
	reports, total, err = svc.List(models.ReportStatusPending, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, reports, 1)
	assert.Equal(t, "offensive", reports[0].Reason)

	var ve ValidationError
	assert.ErrorAs(t, svc.Action(report.ID, &dto.ActionReportRequest{Status: "escalated"}), &ve)
	assert.ErrorIs(t, svc.Action(9999, &dto.ActionReportRequest{Status: models.ReportStatusReviewed}), ErrReportNotFound)
}
