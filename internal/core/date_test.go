// AngelaMos | 2026
// date_test.go

package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	for _, bad := range []string{"", "15/03/2024", "2024-13-01", "2024-03-15T10:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidInput), bad)
	}
}

func TestParseClock(t *testing.T) {
	v, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", v)

	v, err = ParseClock(" 9:05 ")
	require.NoError(t, err)
	assert.Equal(t, "09:05", v)

	_, err = ParseClock("25:00")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-01-10"))
	assert.Equal(t, "2024-01-10", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-31 00:00:00+00:00")))
	assert.Equal(t, "2023-12-31", d.String())

	loc := time.FixedZone("UTC-5", -5*3600)
	require.NoError(t, d.Scan(time.Date(2024, 2, 29, 23, 0, 0, 0, loc)))
	assert.Equal(t, "2024-02-29", d.String(), "calendar day is kept as stored")

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("2024"))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 15)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", v)
}
