package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeLabelFromHours(t *testing.T) {
	assert.Equal(t, TimeLabel("3:30 PM"), NewTimeLabelFromHours(15.5))
	assert.Equal(t, TimeLabel("7:00 PM"), NewTimeLabelFromHours(19))
	assert.Equal(t, TimeLabel("12:00 PM"), NewTimeLabelFromHours(12))
	assert.Equal(t, TimeLabel("11:30 AM"), NewTimeLabelFromHours(11.5))
	assert.Equal(t, TimeLabel("9:00 AM"), NewTimeLabelFromHours(9))
}

func TestNewTimeLabelFromString(t *testing.T) {
	label, err := NewTimeLabelFromString("4:00 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeLabel("4:00 PM"), label)

	for _, bad := range []string{"", "16:00", "4:15 PM", "13:00 PM", "4:00pm", "4:00"} {
		_, err := NewTimeLabelFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeLabel, "input %q", bad)
	}
}

func TestTimeLabelScan(t *testing.T) {
	var label TimeLabel
	require.NoError(t, label.Scan("5:30 PM"))
	assert.Equal(t, TimeLabel("5:30 PM"), label)

	require.NoError(t, label.Scan([]byte("6:00 PM")))
	assert.Equal(t, TimeLabel("6:00 PM"), label)

	assert.Error(t, label.Scan(42))
}
