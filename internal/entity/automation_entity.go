package entity

import "time"

type AutomationStatus string

const (
	AutomationStatusActive AutomationStatus = "active"
	AutomationStatusPaused AutomationStatus = "paused"
	AutomationStatusDraft  AutomationStatus = "draft"
)

type Automation struct {
	Id          string
	Name        string
	Description string
	Trigger     string
	Actions     []string
	Status      AutomationStatus
	LastRun     *time.Time
	RunCount    int
}
