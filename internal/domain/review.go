package domain

import "time"

// Review represents a customer review of the service
type Review struct {
	ID        int64 // назначается базой при вставке
	Name      string
	Rating    int // 1..5
	Text      string
	CreatedAt time.Time
}

// Review validation constants
const (
	MinRating         = 1
	MaxRating         = 5
	MaxReviewTextLen  = 1000
	MaxReviewNameLen  = 100
	DefaultReviewsCap = 6 // сколько отзывов показывает главная страница
)
