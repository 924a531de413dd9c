package create_booking

import (
	"fmt"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выбор услуги, даты и времени проверяется первым: это обязательные шаги
// мастера бронирования, без них кандидат не имеет смысла
func validateRequest(req *Request) (domain.ServicePlan, error) {
	if req.ServiceKey == "" {
		return domain.ServicePlan{}, fmt.Errorf("%w: service is required", ErrMissingSelection)
	}

	plan, ok := domain.PlanByKey(domain.PlanKey(req.ServiceKey))
	if !ok {
		return domain.ServicePlan{}, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceKey)
	}

	if req.Date.IsZero() {
		return domain.ServicePlan{}, fmt.Errorf("%w: date is required", ErrMissingSelection)
	}

	if req.StartTime.IsZero() {
		return domain.ServicePlan{}, fmt.Errorf("%w: start time is required", ErrMissingSelection)
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.ServicePlan{}, fmt.Errorf("%w: invalid start time format: %v", ErrInvalidInput, err)
	}

	if req.TotalBins < domain.MinBins {
		return domain.ServicePlan{}, fmt.Errorf("%w: totalBins must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return domain.ServicePlan{}, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return domain.ServicePlan{}, fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.CustomerAddress == "" {
		return domain.ServicePlan{}, fmt.Errorf("%w: customer address is required", ErrInvalidInput)
	}

	if req.WashingLocation == "" {
		return domain.ServicePlan{}, fmt.Errorf("%w: washing location is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.ServicePlan{}, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return plan, nil
}

// countQuotaUsage считает неотмененные бронирования подписки этого клиента
// в календарном месяце кандидата
// Идентичность клиента - телефон (см. domain.SameCustomer)
func countQuotaUsage(bookings []*domain.Booking, phone string) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if domain.SameCustomer(b.CustomerPhone, phone) {
			count++
		}
	}
	return count
}
