package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Daniil2209/Cleandins/internal/domain"
	"github.com/Daniil2209/Cleandins/pkg/ptr"
)

func TestFormatBookingMessage(t *testing.T) {
	booking := &domain.Booking{
		ID:              1760000000000,
		ServiceKey:      domain.PlanOneTime,
		ServiceName:     "Single Cleaning",
		Date:            time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:       "3:30 PM",
		TotalBins:       4,
		DurationSlots:   2,
		Price:           85,
		Status:          domain.StatusConfirmed,
		CustomerName:    "John Doe",
		CustomerPhone:   "555-0100",
		CustomerAddress: "12 Oak St",
		WashingLocation: "Driveway",
		Notes:           ptr.Ptr("Gate code 4411"),
	}

	msg := formatBookingMessage(booking)

	assert.Contains(t, msg, "NEW BOOKING CONFIRMED* (ID: 1760000000000)")
	assert.Contains(t, msg, "*Customer:* John Doe")
	assert.Contains(t, msg, "*Price:* $85")
	assert.Contains(t, msg, "*Bins:* 4 total")
	assert.Contains(t, msg, "*Duration:* 60 minutes")
	assert.Contains(t, msg, "*Date:* Monday, October 13, 2025")
	assert.Contains(t, msg, "*Time:* 3:30 PM")
	assert.Contains(t, msg, "*Notes:* Gate code 4411")
	assert.Contains(t, msg, "Water access required")
}

func TestFormatBookingMessage_NoNotes(t *testing.T) {
	booking := &domain.Booking{
		ID:        1,
		Date:      time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime: "3:30 PM",
	}

	msg := formatBookingMessage(booking)
	assert.NotContains(t, msg, "*Notes:*")
}
