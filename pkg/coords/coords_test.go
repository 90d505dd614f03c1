package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeInto simulates keystrokes, one character at a time.
func typeInto(p *Pair, s string) Effect {
	var last Effect
	for i := 1; i <= len(s); i++ {
		last = p.SetEasting(s[:i])
	}
	return last
}

func TestEastingAdvancesAtFiveDigits(t *testing.T) {
	p := &Pair{}
	p.FocusEasting()

	for i := 1; i < 5; i++ {
		eff := p.SetEasting("12345"[:i])
		require.False(t, eff.AdvanceToNorthing, "advanced early at %d", i)
	}
	eff := p.SetEasting("12345")
	assert.True(t, eff.AdvanceToNorthing)
	assert.Equal(t, Editing, p.State())
}

func TestNewEastingClearsStaleNorthingOnFirstKeystroke(t *testing.T) {
	p := &Pair{Easting: "11111", Northing: "99999"}
	p.FocusEasting()

	eff := p.SetEasting("1111")
	assert.True(t, eff.ClearedNorthing)
	assert.Equal(t, "", p.Northing)

	p.Northing = "55555"
	eff = p.SetEasting("11112")
	assert.False(t, eff.ClearedNorthing, "only the first change after focus clears")
	assert.Equal(t, "55555", p.Northing)
}

func TestBlankNorthingIsNotReportedAsCleared(t *testing.T) {
	p := &Pair{Northing: "   "}
	p.FocusEasting()
	eff := p.SetEasting("1")
	assert.False(t, eff.ClearedNorthing)
}

func TestClearingEastingClearsNorthing(t *testing.T) {
	p := &Pair{}
	p.FocusEasting()
	typeInto(p, "12345")
	p.SetNorthing("67890")
	require.True(t, p.Valid())

	eff := p.SetEasting("")
	assert.True(t, eff.ClearedNorthing)
	assert.Equal(t, "", p.Northing)
	assert.Equal(t, Idle, p.State())
	assert.False(t, p.Valid())
}

func TestEastingSanitizes(t *testing.T) {
	p := &Pair{}
	p.SetEasting("12a3-4 5678")
	assert.Equal(t, "12345", p.Easting)

	eff := p.SetEasting("abc")
	assert.Equal(t, "", p.Easting)
	assert.Equal(t, Idle, p.State())
	assert.False(t, eff.AdvanceToNorthing)
}

func TestNorthingCompletes(t *testing.T) {
	p := &Pair{}
	assert.False(t, p.SetNorthing("6789").NorthingComplete)
	assert.True(t, p.SetNorthing("6789012").NorthingComplete)
	assert.Equal(t, "67890", p.Northing)
}
