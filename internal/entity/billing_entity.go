package entity

import "time"

type PlanLimits struct {
	Uploads int64
	Chats   int64
	Storage int64 // bytes
	Users   int
}

type PricingPlan struct {
	Id            PlanTier
	Name          string
	MonthlyPrice  float64
	YearlyPrice   float64
	Features      []string
	Limits        PlanLimits
	IsMostPopular bool
}

// PriceFor returns the plan price for the given billing period.
func (p PricingPlan) PriceFor(period BillingPeriod) float64 {
	if period == BillingPeriodYearly {
		return p.YearlyPrice
	}
	return p.MonthlyPrice
}

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

type Invoice struct {
	Id     string
	Date   time.Time
	Amount float64
	Status InvoiceStatus
	Plan   string
}
