package entity

type UsageKind string
type BillingPeriod string

const (
	UsageKindUploads UsageKind = "uploads"
	UsageKindChats   UsageKind = "chats"
	UsageKindStorage UsageKind = "storage"

	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// Usage holds quota consumption for the current billing period
type Usage struct {
	UploadsUsed  int64
	UploadsLimit int64
	ChatsUsed    int64
	ChatsLimit   int64
	StorageUsed  int64 // bytes
	StorageLimit int64 // bytes
	Period       BillingPeriod
}

// Counter returns the used/limit pair for the given kind.
func (u Usage) Counter(kind UsageKind) (used, limit int64, ok bool) {
	switch kind {
	case UsageKindUploads:
		return u.UploadsUsed, u.UploadsLimit, true
	case UsageKindChats:
		return u.ChatsUsed, u.ChatsLimit, true
	case UsageKindStorage:
		return u.StorageUsed, u.StorageLimit, true
	}
	return 0, 0, false
}

// Add increments the used counter of kind and reports whether kind is known.
func (u *Usage) Add(kind UsageKind, delta int64) bool {
	switch kind {
	case UsageKindUploads:
		u.UploadsUsed += delta
	case UsageKindChats:
		u.ChatsUsed += delta
	case UsageKindStorage:
		u.StorageUsed += delta
	default:
		return false
	}
	return true
}

func UsageKinds() []UsageKind {
	return []UsageKind{UsageKindUploads, UsageKindChats, UsageKindStorage}
}
