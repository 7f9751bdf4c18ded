package player

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, fold("jose"), fold("JOSÉ"))
	assert.Equal(t, fold("muller"), fold("Müller"))
	assert.Equal(t, "", fold(""))
}

func TestParseSearch(t *testing.T) {
	q := parseSearch(" 10 ")
	assert.True(t, q.hasJersey)
	assert.Equal(t, 10, q.jersey)
	assert.Equal(t, "10", q.text)

	q = parseSearch("keeper")
	assert.False(t, q.hasJersey, "non-numeric text disables the jersey predicate")

	_, err := parseJersey("ten")
	assert.ErrorIs(t, err, ErrMalformedSearch)
}

func TestSearchQuery_Matches(t *testing.T) {
	p := models.Player{Name: "Zoë Ortiz", Position: "Midfielder", JerseyNumber: 8}

	assert.True(t, parseSearch("zoe").matches(p), "diacritics are ignored")
	assert.True(t, parseSearch("FIELD").matches(p), "position substring, any case")
	assert.True(t, parseSearch("8").matches(p), "jersey number")
	assert.False(t, parseSearch("9").matches(p))
	assert.True(t, parseSearch("").matches(p))
}

func TestFilterPlayers_StableJerseyOrder(t *testing.T) {
	a := models.Player{ID: uuid.New(), Name: "A", JerseyNumber: 7}
	b := models.Player{ID: uuid.New(), Name: "B", JerseyNumber: 3}
	c := models.Player{ID: uuid.New(), Name: "C", JerseyNumber: 7}
	d := models.Player{ID: uuid.New(), Name: "D", JerseyNumber: 1}

	got := filterPlayers([]models.Player{a, b, c, a, d}, func(models.Player) bool { return true })

	assert.Equal(t, []models.Player{d, b, a, c}, got)
}
