package entity

type PlanTier string

const (
	PlanTierFree       PlanTier = "free"
	PlanTierPro        PlanTier = "pro"
	PlanTierEnterprise PlanTier = "enterprise"
)

type OrganizationSettings struct {
	DefaultAiEngine  AiEngine
	EnabledAiEngines []AiEngine
	Language         string
	RetentionDays    int
	Theme            *string
}

type Organization struct {
	Id       string
	Name     string
	Plan     PlanTier
	Usage    Usage
	Settings OrganizationSettings
}

func (o *Organization) Clone() *Organization {
	if o == nil {
		return nil
	}
	c := *o
	c.Settings.EnabledAiEngines = append([]AiEngine(nil), o.Settings.EnabledAiEngines...)
	if o.Settings.Theme != nil {
		t := *o.Settings.Theme
		c.Settings.Theme = &t
	}
	return &c
}
