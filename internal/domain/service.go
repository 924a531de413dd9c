package domain

// PlanKind is the kind of a service plan
type PlanKind string

const (
	KindSingle       PlanKind = "single"
	KindSubscription PlanKind = "subscription"
)

// PlanKey is the stable key of a service plan in the catalog
type PlanKey string

const (
	PlanOneTime PlanKey = "one-time"
	PlanMonthly PlanKey = "monthly"
)

// ServicePlan represents an entry of the static service catalog
type ServicePlan struct {
	Key               PlanKey
	Name              string
	Description       string
	BasePrice         float64
	Kind              PlanKind
	CleaningsPerMonth int // только для подписки
}

// IsSubscription returns true for subscription-type plans
func (p ServicePlan) IsSubscription() bool {
	return p.Kind == KindSubscription
}

// Price computes the total price for the given bin count:
// base price plus ExtraBinRate for every bin above BinsIncluded
func (p ServicePlan) Price(bins int) float64 {
	price := p.BasePrice
	if bins > BinsIncluded {
		price += float64(bins-BinsIncluded) * ExtraBinRate
	}
	return price
}

// RemainingQuota returns how many subscription bookings are still allowed
// in a month given the number already used. Not meaningful for single plans
func (p ServicePlan) RemainingQuota(used int) int {
	return p.CleaningsPerMonth - used
}

// Plans статический каталог тарифов
// Неизменяемая конфигурация, задается на этапе компиляции
var Plans = []ServicePlan{
	{
		Key:         PlanOneTime,
		Name:        "Single Cleaning",
		Description: "One-time cleaning service",
		BasePrice:   55,
		Kind:        KindSingle,
	},
	{
		Key:               PlanMonthly,
		Name:              "Monthly Plan",
		Description:       "4 cleanings per month",
		BasePrice:         120,
		Kind:              KindSubscription,
		CleaningsPerMonth: 4,
	},
}

// PlanByKey ищет тариф в каталоге по ключу
func PlanByKey(key PlanKey) (ServicePlan, bool) {
	for _, p := range Plans {
		if p.Key == key {
			return p, true
		}
	}
	return ServicePlan{}, false
}
