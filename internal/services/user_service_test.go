package services

import (
	"testing"
	"time"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserList(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	createUser(t, db, "alpha", models.RoleArtist)
	createUser(t, db, "beta", models.RoleResearcher)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createUser(t, db, "alpha", models.RoleArtist)

	role := models.RoleResearcher
	status := models.UserStatusInactive
	require.NoError(t, svc.Update(user.ID, &dto.UpdateUserRequest{Role: &role, Status: &status}))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.RoleResearcher, stored.Role)
	assert.Equal(t, models.UserStatusInactive, stored.Status)

	// Admin updates are strict: unknown values are rejected, not coerced.
	var ve ValidationError
	bad := "superuser"
	assert.ErrorAs(t, svc.Update(user.ID, &dto.UpdateUserRequest{Role: &bad}), &ve)
	badStatus := "banned"
	assert.ErrorAs(t, svc.Update(user.ID, &dto.UpdateUserRequest{Status: &badStatus}), &ve)
	assert.ErrorAs(t, svc.Update(user.ID, &dto.UpdateUserRequest{}), &ve)

	assert.ErrorIs(t, svc.Update(9999, &dto.UpdateUserRequest{Role: &role}), ErrUserNotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	entrySvc := NewEntryService(db, 0)
	reportSvc := NewReportService(db)
	profileSvc := NewProfileService(db)

	victim := createUser(t, db, "victim", models.RoleArtist)
	bystander := createUser(t, db, "bystander", models.RoleResearcher)

	entry := createEntry(t, entrySvc, actorFor(victim), nil)
	otherEntry := createEntry(t, entrySvc, actorFor(bystander), nil)

	// A report by someone else on the victim's entry, a report by the victim
	// on someone else's entry, a profile and a session.
	_, err := reportSvc.Create(&dto.CreateReportRequest{EntryID: entry.ID, Reason: "spam"}, actorFor(bystander))
	require.NoError(t, err)
	_, err = reportSvc.Create(&dto.CreateReportRequest{EntryID: otherEntry.ID, Reason: "spam"}, actorFor(victim))
	require.NoError(t, err)
	require.NoError(t, profileSvc.Update(&dto.UpdateProfileRequest{DisplayName: "V"}, actorFor(victim)))
	require.NoError(t, db.Create(&models.RefreshToken{
		ID:        uuid.New(),
		UserID:    victim.ID,
		TokenHash: "h",
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	require.NoError(t, svc.Delete(victim.ID))

	assert.ErrorIs(t, db.First(&models.User{}, victim.ID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&models.ArtEntry{}, entry.ID).Error, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.ContentReport{}).Count(&count)
	assert.EqualValues(t, 0, count, "reports on and by the deleted user are removed")
	db.Model(&models.UserProfile{}).Where("user_id = ?", victim.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.RefreshToken{}).Where("user_id = ?", victim.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// Audit rows survive with the user reference cleared.
	var activities []models.ActivityLog
	require.NoError(t, db.Where("entry_id = ?", entry.ID).Find(&activities).Error)
	require.NotEmpty(t, activities)
	for _, a := range activities {
		assert.Nil(t, a.UserID)
	}

	// The bystander and their entry are untouched.
	assert.NoError(t, db.First(&models.User{}, bystander.ID).Error)
	assert.NoError(t, db.First(&models.ArtEntry{}, otherEntry.ID).Error)

	assert.ErrorIs(t, svc.Delete(victim.ID), ErrUserNotFound)
}
