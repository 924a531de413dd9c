package domain

// Slot grid constants
const (
	// SlotMinutes длительность одного слота сетки
	SlotMinutes = 30

	// MaxJobSlots потолок длительности работы в слотах, сколько бы баков ни было
	MaxJobSlots = 4

	// BinsIncluded количество баков, входящих в базовую цену
	BinsIncluded = 2

	// ExtraBinRate доплата за каждый бак сверх BinsIncluded
	ExtraBinRate = 15.0
)

// Business validation constants
const (
	MinBins        = 1
	MaxNotesLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
