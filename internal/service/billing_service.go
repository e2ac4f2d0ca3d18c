package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/pkg/store"
)

type IBillingService interface {
	Overview(ctx context.Context, req *dto.BillingOverviewRequest) (*dto.BillingOverviewResponse, error)
}

type billingService struct {
	workspace     *store.WorkspaceStore
	billingMapper *mapper.BillingMapper
}

func NewBillingService(workspace *store.WorkspaceStore) IBillingService {
	return &billingService{
		workspace:     workspace,
		billingMapper: mapper.NewBillingMapper(),
	}
}

// Overview prices the catalogue for the requested period, defaulting to the
// organization's billing period.
func (c *billingService) Overview(ctx context.Context, req *dto.BillingOverviewRequest) (*dto.BillingOverviewResponse, error) {
	org := c.workspace.Organization()
	period := org.Usage.Period
	if req.Period != "" {
		period = entity.BillingPeriod(req.Period)
	}

	res := &dto.BillingOverviewResponse{
		Plans:    make([]dto.PricingPlanResponse, 0),
		Usage:    usageIndicators(org.Usage),
		Invoices: make([]dto.InvoiceResponse, 0),
	}
	for _, plan := range c.workspace.Plans() {
		priced := c.billingMapper.ToPlanResponse(plan, period, org.Plan)
		res.Plans = append(res.Plans, priced)
		if priced.Current {
			current := priced
			res.CurrentPlan = &current
		}
	}
	for _, inv := range c.workspace.Invoices() {
		res.Invoices = append(res.Invoices, c.billingMapper.ToInvoiceResponse(inv))
	}
	return res, nil
}
