package dto

import "time"

type ApprovalResponse struct {
	Id          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RequestedBy string     `json:"requested_by"`
	RequestedAt time.Time  `json:"requested_at"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	RelatedFile *string    `json:"related_file,omitempty"`
	DecidedBy   *string    `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

type ListApprovalsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type ListApprovalsResponse struct {
	Approvals []ApprovalResponse `json:"approvals"`
	Counts    map[string]int     `json:"counts"`
}
