package service

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/pkg/quota"
	"docintel-be/pkg/utils"
)

// usageIndicators renders every quota counter for display. Storage counters
// carry human-readable byte labels.
func usageIndicators(u entity.Usage) []dto.UsageIndicator {
	out := make([]dto.UsageIndicator, 0, len(entity.UsageKinds()))
	for _, kind := range entity.UsageKinds() {
		used, limit, _ := u.Counter(kind)
		out = append(out, usageIndicator(kind, used, limit))
	}
	return out
}

func usageIndicator(kind entity.UsageKind, used, limit int64) dto.UsageIndicator {
	ind := quota.NewIndicator(used, limit)
	res := dto.UsageIndicator{
		Kind:       string(kind),
		Used:       ind.Used,
		Limit:      ind.Limit,
		UsedLabel:  formatCount(used),
		LimitLabel: formatCount(limit),
		Percentage: ind.Percentage,
		Severity:   string(ind.Severity),
		Variant:    ind.Severity.Variant(),
		Exceeded:   ind.Exceeded,
	}
	if kind == entity.UsageKindStorage {
		res.UsedLabel = utils.FormatFileSize(used)
		res.LimitLabel = utils.FormatFileSize(limit)
	}
	return res
}
