package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

// ToPlanResponse prices the plan for period. The free plan is always billed
// monthly.
func (m *BillingMapper) ToPlanResponse(p entity.PricingPlan, period entity.BillingPeriod, current entity.PlanTier) dto.PricingPlanResponse {
	if p.MonthlyPrice == 0 && p.YearlyPrice == 0 {
		period = entity.BillingPeriodMonthly
	}
	return dto.PricingPlanResponse{
		Id:       string(p.Id),
		Name:     p.Name,
		Price:    p.PriceFor(period),
		Period:   string(period),
		Features: append([]string(nil), p.Features...),
		Limits: dto.PlanLimitsResponse{
			Uploads: p.Limits.Uploads,
			Chats:   p.Limits.Chats,
			Storage: p.Limits.Storage,
			Users:   p.Limits.Users,
		},
		Popular: p.IsMostPopular,
		Current: p.Id == current,
	}
}

func (m *BillingMapper) ToInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		Id:     inv.Id,
		Date:   inv.Date,
		Amount: inv.Amount,
		Status: string(inv.Status),
		Plan:   inv.Plan,
	}
}
