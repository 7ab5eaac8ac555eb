package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIntNeverRepeats(t *testing.T) {
	p := New(42)

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		n, err := p.UniqueInt(1, 50)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 50)
		assert.False(t, seen[n], "value %d issued twice", n)
		seen[n] = true
	}
}

func TestUniqueIntExhaustsRange(t *testing.T) {
	p := New(42)

	for i := 0; i < 5; i++ {
		_, err := p.UniqueInt(1, 5)
		require.NoError(t, err)
	}

	_, err := p.UniqueInt(1, 5)
	assert.Error(t, err, "sixth draw from a five-value range must fail")
}

func TestUniqueIntRejectsInvalidRange(t *testing.T) {
	p := New(42)
	_, err := p.UniqueInt(10, 5)
	assert.Error(t, err)
}

func TestBothifyShape(t *testing.T) {
	p := New(42)

	got := p.Bothify("???-#####")
	require.Len(t, got, 9)
	for i := 0; i < 3; i++ {
		assert.True(t, got[i] >= 'A' && got[i] <= 'Z', "position %d of %q", i, got)
	}
	assert.Equal(t, byte('-'), got[3])
	for i := 4; i < 9; i++ {
		assert.True(t, got[i] >= '0' && got[i] <= '9', "position %d of %q", i, got)
	}
}

func TestDateTimeBetweenStaysInRange(t *testing.T) {
	p := New(42)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		got := p.DateTimeBetween(start, end)
		assert.False(t, got.Before(start), "draw %v before %v", got, start)
		assert.False(t, got.After(end), "draw %v after %v", got, end)
	}
}

func TestDateTimeBetweenDegenerateRangeCollapses(t *testing.T) {
	p := New(42)
	at := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	assert.True(t, p.DateTimeBetween(at, at).Equal(at))
	assert.True(t, p.DateTimeBetween(at, at.Add(-time.Hour)).Equal(at))
}

func TestDateBetweenIsMidnightUTC(t *testing.T) {
	p := New(42)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	got := p.DateBetween(start, end)
	h, m, s := got.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)
	assert.Equal(t, time.UTC, got.Location())
}

func TestPasswordHashIsHexDigest(t *testing.T) {
	p := New(42)

	hash := p.PasswordHash()
	require.Len(t, hash, 64)
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'), "position %d of %q", i, hash)
	}
}

func TestSameSeedSameDraws(t *testing.T) {
	a := New(7)
	b := New(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, a.Bothify("???###"), b.Bothify("???###"))
	}
}

func TestTextRespectsMaxChars(t *testing.T) {
	p := New(42)

	got := p.Text(200)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 200)
}
