package get_services

import "github.com/Daniil2209/Cleandins/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []Service `json:"services"`
}

// Service модель тарифа из каталога
type Service struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	BasePrice         float64 `json:"basePrice"`
	Kind              string  `json:"kind"`
	CleaningsPerMonth int     `json:"cleaningsPerMonth,omitempty"`
	BinsIncluded      int     `json:"binsIncluded"`
	ExtraBinRate      float64 `json:"extraBinRate"`
}

// FromDomainPlans конвертирует каталог тарифов в HTTP response
func FromDomainPlans(plans []domain.ServicePlan) *ServicesResponse {
	services := make([]Service, len(plans))
	for i, plan := range plans {
		services[i] = Service{
			Key:               string(plan.Key),
			Name:              plan.Name,
			Description:       plan.Description,
			BasePrice:         plan.BasePrice,
			Kind:              string(plan.Kind),
			CleaningsPerMonth: plan.CleaningsPerMonth,
			BinsIncluded:      domain.BinsIncluded,
			ExtraBinRate:      domain.ExtraBinRate,
		}
	}

	return &ServicesResponse{Services: services}
}
