package dto

import "time"

type PlanLimitsResponse struct {
	Uploads int64 `json:"uploads"`
	Chats   int64 `json:"chats"`
	Storage int64 `json:"storage"`
	Users   int   `json:"users"`
}

type PricingPlanResponse struct {
	Id       string             `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	Period   string             `json:"period"`
	Features []string           `json:"features"`
	Limits   PlanLimitsResponse `json:"limits"`
	Popular  bool               `json:"popular"`
	Current  bool               `json:"current"`
}

type InvoiceResponse struct {
	Id     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Status string    `json:"status"`
	Plan   string    `json:"plan"`
}

type BillingOverviewRequest struct {
	Period string `query:"period" validate:"omitempty,oneof=monthly yearly"`
}

type BillingOverviewResponse struct {
	CurrentPlan *PricingPlanResponse  `json:"current_plan"`
	Plans       []PricingPlanResponse `json:"plans"`
	Usage       []UsageIndicator      `json:"usage"`
	Invoices    []InvoiceResponse     `json:"invoices"`
}
