package entity

type MonthlyUsage struct {
	Month   string
	Uploads int
	Chats   int
	Storage float64 // gigabytes
}

type TopFile struct {
	Name  string
	Views int
	Chats int
}

// Analytics is a read-only reporting snapshot built once at startup
type Analytics struct {
	TotalFiles    int
	TotalChats    int
	TotalUploads  int
	TotalStorage  int64
	MonthlyData   []MonthlyUsage
	TopFiles      []TopFile
	AiEngineUsage map[AiEngine]int // percent share per engine
}

func (a *Analytics) Clone() *Analytics {
	if a == nil {
		return nil
	}
	c := *a
	c.MonthlyData = append([]MonthlyUsage(nil), a.MonthlyData...)
	c.TopFiles = append([]TopFile(nil), a.TopFiles...)
	c.AiEngineUsage = make(map[AiEngine]int, len(a.AiEngineUsage))
	for k, v := range a.AiEngineUsage {
		c.AiEngineUsage[k] = v
	}
	return &c
}
