package database

import (
	"log/slog"

	"github.com/artatlas/atlas-api/internal/models"
	"gorm.io/gorm"
)

var defaultTypes = []models.ArtType{
	{Code: "rock_art", Name: "Rock Art", Description: "Cave paintings, petroglyphs and other rock surfaces", SortOrder: 1},
	{Code: "sculpture", Name: "Sculpture", Description: "Carvings and three-dimensional works", SortOrder: 2},
	{Code: "contemporary", Name: "Contemporary", Description: "Murals, installations and gallery pieces", SortOrder: 3},
	{Code: "other", Name: "Other", Description: "Art forms outside the listed types", SortOrder: 4},
}

var defaultPeriods = []models.ArtPeriod{
	{Code: "ancient", Name: "Ancient", Description: "Pre-colonial works", DateRange: "before 1788", SortOrder: 1},
	{Code: "historical", Name: "Historical", Description: "Colonial-era works", DateRange: "1788-1900", SortOrder: 2},
	{Code: "contemporary", Name: "Contemporary", Description: "Modern and present-day works", DateRange: "1900-present", SortOrder: 3},
}

// SeedTaxonomies inserts the default art types and periods that the taxonomy
// resolver and the submission form rely on. Existing codes are left alone.
func SeedTaxonomies(db *gorm.DB) error {
	seeded := 0

	for _, t := range defaultTypes {
		var existing models.ArtType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			continue
		}
		t.IsActive = true
		if err := db.Create(&t).Error; err != nil {
			return err
		}
		seeded++
	}

	for _, p := range defaultPeriods {
		var existing models.ArtPeriod
		if err := db.Where("code = ?", p.Code).First(&existing).Error; err == nil {
			continue
		}
		p.IsActive = true
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded default taxonomies", "new", seeded)
	}
	return nil
}
