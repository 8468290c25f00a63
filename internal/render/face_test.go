package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaceMeasurerScalesLinearly(t *testing.T) {
	m := NewFaceMeasurer()

	at13 := m.Advance("Resume", 13)
	at26 := m.Advance("Resume", 26)

	assert.Greater(t, at13, 0.0)
	assert.InDelta(t, at13*2, at26, 1e-9)
}

func TestFaceMeasurerEmptyString(t *testing.T) {
	m := NewFaceMeasurer()
	assert.Equal(t, 0.0, m.Advance("", 18))
}

func TestFaceMeasurerMonotonic(t *testing.T) {
	m := NewFaceMeasurer()
	assert.Greater(t, m.Advance("Quit to Lobby", 18), m.Advance("Quit", 18))
}
