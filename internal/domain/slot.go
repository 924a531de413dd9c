package domain

import "github.com/Daniil2209/Cleandins/pkg/types"

// SlotsForBins maps a bin count to the number of consecutive grid slots
// the job occupies. Monotonic step function capped at MaxJobSlots:
// the cap is a business rule, a crew does not spend more than two hours
// at one address
func SlotsForBins(bins int) int {
	switch {
	case bins <= 2:
		return 1
	case bins <= 4:
		return 2
	case bins <= 6:
		return 3
	default:
		return MaxJobSlots
	}
}

// SlotIndex returns the ordinal index of a label within the grid, -1 if absent
func SlotIndex(grid []types.TimeLabel, label types.TimeLabel) int {
	for i, slot := range grid {
		if slot == label {
			return i
		}
	}
	return -1
}

// BlockedSlots computes the set of grid labels occupied by existing
// bookings. Each active booking blocks its start slot plus the following
// SlotsForBins(bins)-1 slots; indices past the end of the grid fall off
// the end of the day and are not marked.
//
// A booking whose start label is not found in the grid is skipped: this
// happens when the working-hours table changed after the booking was made.
// Known limitation, kept from the original behaviour
func BlockedSlots(grid []types.TimeLabel, bookings []*Booking) map[types.TimeLabel]struct{} {
	blocked := make(map[types.TimeLabel]struct{})

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		start := SlotIndex(grid, booking.StartTime)
		if start == -1 {
			continue
		}

		duration := SlotsForBins(booking.TotalBins)
		for i := 0; i < duration && start+i < len(grid); i++ {
			blocked[grid[start+i]] = struct{}{}
		}
	}

	return blocked
}
