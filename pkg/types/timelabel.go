package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
)

// TimeLabel отображаемая метка временного слота в 12-часовом формате,
// например "3:30 PM". Именно в таком виде слоты показываются виджету
// и сохраняются в бронированиях
type TimeLabel string

var labelRe = regexp.MustCompile(`^(1[0-2]|[1-9]):(00|30) (AM|PM)$`)

// ErrInvalidTimeLabel возвращается при некорректном формате метки времени
var ErrInvalidTimeLabel = errors.New("types: invalid time label format, expected H:MM AM/PM")

// NewTimeLabelFromHours строит метку слота из дробных часов (15.5 = "3:30 PM")
// Минутная часть может быть только 0 или 30
func NewTimeLabelFromHours(fractional float64) TimeLabel {
	hour := int(fractional)
	minute := "00"
	if fractional-float64(hour) >= 0.5 {
		minute = "30"
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour
	if hour > 12 {
		displayHour = hour - 12
	}

	return TimeLabel(fmt.Sprintf("%d:%s %s", displayHour, minute, period))
}

// NewTimeLabelFromString парсит и валидирует метку слота
func NewTimeLabelFromString(s string) (TimeLabel, error) {
	label := TimeLabel(s)
	if err := label.Validate(); err != nil {
		return "", err
	}
	return label, nil
}

// Validate проверяет формат метки
func (t TimeLabel) Validate() error {
	if !labelRe.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, string(t))
	}
	return nil
}

// IsZero возвращает true для пустой метки
func (t TimeLabel) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление метки
func (t TimeLabel) String() string {
	return string(t)
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeLabel) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeLabel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeLabel(v)
	case []byte:
		*t = TimeLabel(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeLabel", src)
	}
	return nil
}
