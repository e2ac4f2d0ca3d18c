package dto

import "time"

type AutomationResponse struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Trigger     string     `json:"trigger"`
	Actions     []string   `json:"actions"`
	Status      string     `json:"status"`
	LastRun     *time.Time `json:"last_run,omitempty"`
	RunCount    int        `json:"run_count"`
}

type ListAutomationsResponse struct {
	Automations []AutomationResponse `json:"automations"`
	ActiveCount int                  `json:"active_count"`
	TotalRuns   int                  `json:"total_runs"`
}
