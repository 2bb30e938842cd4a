package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListIncludesSeededTaxonomies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	resp, err := svc.List()
	require.NoError(t, err)
	assert.True(t, resp.Success)

	typeCodes := make([]string, 0, len(resp.Types))
	for _, c := range resp.Types {
		typeCodes = append(typeCodes, c.Code)
	}
	assert.Contains(t, typeCodes, "rock_art")
	assert.Contains(t, typeCodes, "sculpture")
	assert.Contains(t, typeCodes, "other")

	periodCodes := make([]string, 0, len(resp.Periods))
	for _, c := range resp.Periods {
		periodCodes = append(periodCodes, c.Code)
	}
	assert.Contains(t, periodCodes, "ancient")
	assert.Contains(t, periodCodes, "historical")
	assert.Contains(t, periodCodes, "contemporary")
}

func TestCategoryListUsageCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	entrySvc := NewEntryService(db, 0)
	artist := createUser(t, db, "artist", models.RoleArtist)

	createEntry(t, entrySvc, actorFor(artist), nil) // rock_art / ancient
	createEntry(t, entrySvc, actorFor(artist), nil)

	resp, err := svc.List()
	require.NoError(t, err)
	for _, c := range resp.Types {
		if c.Code == "rock_art" {
			assert.EqualValues(t, 2, c.UsageCount)
		} else {
			assert.EqualValues(t, 0, c.UsageCount)
		}
	}
	for _, c := range resp.Periods {
		if c.Code == "ancient" {
			assert.EqualValues(t, 2, c.UsageCount)
		}
	}
}

func TestCategoryAddDerivesCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	created, err := svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindType, Name: "Wood Carving"})
	require.NoError(t, err)
	assert.Equal(t, "wood_carving", created.Code)
	assert.Equal(t, "Wood Carving", created.Name)
	assert.True(t, created.IsActive)

	// Sort order appends after the seeded rows.
	resp, err := svc.List()
	require.NoError(t, err)
	last := resp.Types[len(resp.Types)-1]
	assert.Equal(t, "wood_carving", last.Code)

	period, err := svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindPeriod, Name: "Federation Era", DateRange: "1901-1927"})
	require.NoError(t, err)
	assert.Equal(t, "federation_era", period.Code)
	assert.Equal(t, "1901-1927", period.DateRange)
}

func TestCategoryAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	var ve ValidationError
	_, err := svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindType, Name: ""})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindType, Name: "!!!"})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Add(&dto.AddCategoryRequest{Kind: "flavour", Name: "Wood Carving"})
	assert.ErrorAs(t, err, &ve)

	// Names that normalize to an existing code collide.
	_, err = svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindType, Name: "Rock Art"})
	assert.ErrorIs(t, err, ErrCategoryCodeTaken)
}

func TestCategoryUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	created, err := svc.Add(&dto.AddCategoryRequest{Kind: dto.CategoryKindType, Name: "Wood Carving"})
	require.NoError(t, err)

	err = svc.Update(dto.CategoryKindType, created.ID, &dto.UpdateCategoryRequest{Name: "Carving", Description: "Carved works"})
	require.NoError(t, err)

	var stored models.ArtType
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "Carving", stored.Name)
	assert.Equal(t, "Carved works", stored.Description)
	// The code is fixed at creation; renames do not move entries.
	assert.Equal(t, "wood_carving", stored.Code)

	assert.ErrorIs(t, svc.Update(dto.CategoryKindType, 9999, &dto.UpdateCategoryRequest{Name: "x"}), ErrCategoryNotFound)

	var ve ValidationError
	assert.ErrorAs(t, svc.Update(dto.CategoryKindType, created.ID, &dto.UpdateCategoryRequest{Name: ""}), &ve)
}

func TestCategoryDeleteRefusedWhileInUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	entrySvc := NewEntryService(db, 0)
	artist := createUser(t, db, "artist", models.RoleArtist)

	var rockArt models.ArtType
	require.NoError(t, db.Where("code = ?", "rock_art").First(&rockArt).Error)

	entry := createEntry(t, entrySvc, actorFor(artist), nil) // rock_art

	err := svc.Delete(dto.CategoryKindType, rockArt.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.Contains(t, err.Error(), "used by 1 entries")

	// Once the last referencing entry is gone, the delete goes through.
	require.NoError(t, entrySvc.Delete(entry.ID, actorFor(artist)))
	require.NoError(t, svc.Delete(dto.CategoryKindType, rockArt.ID))

	assert.ErrorIs(t, svc.Delete(dto.CategoryKindType, rockArt.ID), ErrCategoryNotFound)
}
