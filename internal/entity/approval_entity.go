package entity

import "time"

type ApprovalType string
type ApprovalStatus string
type ApprovalPriority string

const (
	ApprovalTypeUpload ApprovalType = "upload"
	ApprovalTypeAccess ApprovalType = "access"
	ApprovalTypeEdit   ApprovalType = "edit"

	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"

	ApprovalPriorityLow    ApprovalPriority = "low"
	ApprovalPriorityMedium ApprovalPriority = "medium"
	ApprovalPriorityHigh   ApprovalPriority = "high"
)

type Approval struct {
	Id          string
	Type        ApprovalType
	Title       string
	Description string
	RequestedBy string
	RequestedAt time.Time
	Status      ApprovalStatus
	Priority    ApprovalPriority
	RelatedFile *string
	DecidedBy   *string
	DecidedAt   *time.Time
}

func (a *Approval) Clone() *Approval {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func IsValidApprovalStatus(status ApprovalStatus) bool {
	switch status {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}
