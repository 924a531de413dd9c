package create_booking

import "errors"

var (
	// ErrMissingSelection возвращается, когда услуга, дата или время не выбраны
	ErrMissingSelection = errors.New("create_booking: service, date or time not selected")

	// ErrUnknownService возвращается, когда выбранный тариф отсутствует в каталоге
	ErrUnknownService = errors.New("create_booking: unknown service plan")

	// ErrClosedDay возвращается, когда на выбранную дату нет рабочих слотов
	ErrClosedDay = errors.New("create_booking: no working hours on this date")

	// ErrInvalidSlot возвращается, когда выбранное время отсутствует в сетке дня
	// (устаревший или подмененный выбор)
	ErrInvalidSlot = errors.New("create_booking: time slot is not in the day grid")

	// ErrNotEnoughTime возвращается, когда нужные последовательные слоты
	// выходят за конец рабочего дня
	ErrNotEnoughTime = errors.New("create_booking: not enough time left in the day")

	// ErrSlotNotAvailable возвращается при пересечении с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrQuotaExceeded возвращается, когда месячная квота подписки исчерпана
	ErrQuotaExceeded = errors.New("create_booking: monthly cleanings quota exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (в отличие от отклоненных кандидатов - признак недоступности хранилища)
	ErrInternal = errors.New("create_booking: internal error")
)
