package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestActorNilSafety(t *testing.T) {
	var anon *Actor
	assert.False(t, anon.Authenticated())
	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.Owns(1))
}

func TestActorRoles(t *testing.T) {
	artist := &Actor{ID: 1, Username: "a", Role: models.RoleArtist}
	assert.True(t, artist.Authenticated())
	assert.False(t, artist.IsAdmin())
	assert.True(t, artist.Owns(1))
	assert.False(t, artist.Owns(2))

	admin := &Actor{ID: 2, Username: "b", Role: models.RoleAdmin}
	assert.True(t, admin.IsAdmin())
}
