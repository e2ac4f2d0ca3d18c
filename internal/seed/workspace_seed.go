package seed

import (
	"time"

	"docintel-be/internal/entity"
	"docintel-be/pkg/store"
)

const (
	ActorId    = "1"
	ActorEmail = "admin@docintel.com"

	gib = int64(1) << 30
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		t, _ = time.Parse("2006-01-02", s)
	}
	return t
}

func strPtr(s string) *string { return &s }

func enginePtr(e entity.AiEngine) *entity.AiEngine { return &e }

// Actor is the predetermined user installed by every successful login.
func Actor(now time.Time) *entity.User {
	return &entity.User{
		Id:          ActorId,
		Email:       ActorEmail,
		Name:        "Robert Edwards",
		Role:        entity.UserRoleAdmin,
		Title:       "Project Manager",
		AvatarURL:   "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		LastActive:  now,
		CanUseAI:    true,
		Permissions: []string{entity.PermissionUpload, entity.PermissionChat, entity.PermissionAdmin, entity.PermissionApprove},
		JoinedAt:    date("2023-01-15"),
		Status:      entity.UserStatusActive,
	}
}

// Workspace returns the demo workspace. now stamps the folders, which carry
// no fixed creation date.
func Workspace(now time.Time) store.WorkspaceSeed {
	return store.WorkspaceSeed{
		OwnerId:      ActorId,
		Organization: Organization(),
		Documents:    Documents(),
		Folders:      Folders(now),
		Analytics:    Analytics(),
		Approvals:    Approvals(),
		Members:      Members(),
		Automations:  Automations(),
		Plans:        Plans(),
		Invoices:     Invoices(),
	}
}

func Usage() entity.Usage {
	return entity.Usage{
		UploadsUsed:  689,
		UploadsLimit: 1000,
		ChatsUsed:    1432,
		ChatsLimit:   2000,
		StorageUsed:  45600000000,
		StorageLimit: 100 * gib,
		Period:       entity.BillingPeriodMonthly,
	}
}

func Organization() entity.Organization {
	return entity.Organization{
		Id:    "1",
		Name:  "DocIntel Enterprise",
		Plan:  entity.PlanTierEnterprise,
		Usage: Usage(),
		Settings: entity.OrganizationSettings{
			DefaultAiEngine: entity.AiEngineOpenAI,
			EnabledAiEngines: []entity.AiEngine{
				entity.AiEngineOpenAI,
				entity.AiEngineGemini,
				entity.AiEngineDeepSeek,
				entity.AiEngineLlama,
			},
			Language:      "en",
			RetentionDays: 365,
			Theme:         strPtr("dark"),
		},
	}
}

func Folders(now time.Time) []*entity.Folder {
	root := entity.RootFolderId
	full := []string{entity.FolderActionRead, entity.FolderActionWrite, entity.FolderActionDelete}
	return []*entity.Folder{
		{
			Id:          root,
			Name:        "Root",
			Path:        "/",
			Permissions: map[string][]string{string(entity.UserRoleAdmin): full},
			CreatedAt:   now,
			CreatedBy:   ActorId,
			Children: []*entity.Folder{
				{
					Id:       "invoices",
					Name:     "Invoices",
					ParentId: &root,
					Path:     "/invoices",
					Permissions: map[string][]string{
						string(entity.UserRoleAdmin):    full,
						string(entity.UserRoleUploader): {entity.FolderActionRead, entity.FolderActionWrite},
					},
					CreatedAt: now,
					CreatedBy: ActorId,
				},
				{
					Id:       "contracts",
					Name:     "Contracts",
					ParentId: &root,
					Path:     "/contracts",
					Permissions: map[string][]string{
						string(entity.UserRoleAdmin):  full,
						string(entity.UserRoleViewer): {entity.FolderActionRead},
					},
					CreatedAt: now,
					CreatedBy: ActorId,
				},
				{
					Id:          "reports",
					Name:        "Reports",
					ParentId:    &root,
					Path:        "/reports",
					Permissions: map[string][]string{string(entity.UserRoleAdmin): full},
					CreatedAt:   now,
					CreatedBy:   ActorId,
				},
			},
		},
	}
}

func Documents() []*entity.Document {
	return []*entity.Document{
		{
			Id:          "1",
			Name:        "Q4 Financial Report.pdf",
			MimeType:    "application/pdf",
			Size:        2048000,
			FolderId:    "reports",
			UploadedBy:  "Robert Edwards",
			UploadedAt:  date("2024-01-15"),
			Tags:        []string{"financial", "q4", "report"},
			AiStatus:    entity.AiStatusCompleted,
			AiEngine:    enginePtr(entity.AiEngineOpenAI),
			Summary:     strPtr("Q4 financial report showing 15% revenue growth and improved operational efficiency"),
			DownloadURL: "#",
			PreviewURL:  strPtr("https://images.pexels.com/photos/590022/pexels-photo-590022.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1"),
		},
		{
			Id:          "2",
			Name:        "Invoice_2024_001.pdf",
			MimeType:    "application/pdf",
			Size:        512000,
			FolderId:    "invoices",
			UploadedBy:  "Jane Smith",
			UploadedAt:  date("2024-01-10"),
			Tags:        []string{"invoice", "2024", "payment"},
			AiStatus:    entity.AiStatusCompleted,
			AiEngine:    enginePtr(entity.AiEngineGemini),
			Summary:     strPtr("Invoice for consulting services - $5,000 due within 30 days"),
			DownloadURL: "#",
			PreviewURL:  strPtr("https://images.pexels.com/photos/4386370/pexels-photo-4386370.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1"),
		},
		{
			Id:          "3",
			Name:        "Service Agreement.docx",
			MimeType:    "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Size:        1024000,
			FolderId:    "contracts",
			UploadedBy:  "Mike Johnson",
			UploadedAt:  date("2024-01-08"),
			Tags:        []string{"contract", "service", "agreement"},
			AiStatus:    entity.AiStatusProcessing,
			AiEngine:    enginePtr(entity.AiEngineDeepSeek),
			DownloadURL: "#",
			PreviewURL:  strPtr("https://images.pexels.com/photos/4386333/pexels-photo-4386333.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1"),
		},
	}
}

func Analytics() entity.Analytics {
	return entity.Analytics{
		TotalFiles:   2847,
		TotalChats:   1432,
		TotalUploads: 689,
		TotalStorage: 45600000000,
		MonthlyData: []entity.MonthlyUsage{
			{Month: "Jan", Uploads: 45, Chats: 120, Storage: 3.2},
			{Month: "Feb", Uploads: 52, Chats: 98, Storage: 4.1},
			{Month: "Mar", Uploads: 78, Chats: 156, Storage: 5.8},
			{Month: "Apr", Uploads: 65, Chats: 134, Storage: 4.9},
			{Month: "May", Uploads: 89, Chats: 178, Storage: 6.3},
			{Month: "Jun", Uploads: 73, Chats: 145, Storage: 5.4},
		},
		TopFiles: AnalyticsTopFiles(),
		AiEngineUsage: map[entity.AiEngine]int{
			entity.AiEngineOpenAI:   45,
			entity.AiEngineGemini:   25,
			entity.AiEngineDeepSeek: 20,
			entity.AiEngineLlama:    10,
		},
	}
}

// AnalyticsTopFiles ranks the most viewed documents.
func AnalyticsTopFiles() []entity.TopFile {
	return []entity.TopFile{
		{Name: "Q4 Financial Report.pdf", Views: 245, Chats: 89},
		{Name: "Employee Handbook.docx", Views: 189, Chats: 56},
		{Name: "Project Charter.pdf", Views: 167, Chats: 43},
		{Name: "Budget Analysis.xlsx", Views: 134, Chats: 32},
		{Name: "Marketing Strategy.pptx", Views: 112, Chats: 28},
	}
}

func Approvals() []*entity.Approval {
	return []*entity.Approval{
		{
			Id:          "1",
			Type:        entity.ApprovalTypeUpload,
			Title:       "Upload to Contracts folder",
			Description: `Request to upload "Service Agreement Template.docx" to the Contracts folder`,
			RequestedBy: "Jane Smith",
			RequestedAt: date("2024-01-15T10:30:00"),
			Status:      entity.ApprovalStatusPending,
			Priority:    entity.ApprovalPriorityHigh,
			RelatedFile: strPtr("Service Agreement Template.docx"),
		},
		{
			Id:          "2",
			Type:        entity.ApprovalTypeAccess,
			Title:       "Access to Financial Reports",
			Description: "Request read access to the Financial Reports folder",
			RequestedBy: "Mike Johnson",
			RequestedAt: date("2024-01-14T14:20:00"),
			Status:      entity.ApprovalStatusPending,
			Priority:    entity.ApprovalPriorityMedium,
		},
		{
			Id:          "3",
			Type:        entity.ApprovalTypeEdit,
			Title:       "Edit Invoice Template",
			Description: "Request to modify the standard invoice template",
			RequestedBy: "Sarah Davis",
			RequestedAt: date("2024-01-13T09:15:00"),
			Status:      entity.ApprovalStatusPending,
			Priority:    entity.ApprovalPriorityLow,
			RelatedFile: strPtr("Invoice_Template.pdf"),
		},
	}
}

func Members() []*entity.User {
	return []*entity.User{
		{
			Id:         "1",
			Name:       "Robert Edwards",
			Email:      "robert.edwards@docintel.com",
			Role:       entity.UserRoleAdmin,
			Status:     entity.UserStatusActive,
			LastActive: date("2024-01-15T10:30:00"),
			JoinedAt:   date("2023-01-15"),
			AvatarURL:  "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		},
		{
			Id:         "2",
			Name:       "Jane Smith",
			Email:      "jane.smith@docintel.com",
			Role:       entity.UserRoleUploader,
			Status:     entity.UserStatusActive,
			LastActive: date("2024-01-14T16:20:00"),
			JoinedAt:   date("2023-03-20"),
			AvatarURL:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		},
		{
			Id:         "3",
			Name:       "Mike Johnson",
			Email:      "mike.johnson@docintel.com",
			Role:       entity.UserRoleViewer,
			Status:     entity.UserStatusActive,
			LastActive: date("2024-01-13T14:15:00"),
			JoinedAt:   date("2023-06-10"),
			AvatarURL:  "https://images.pexels.com/photos/1559486/pexels-photo-1559486.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		},
		{
			Id:         "4",
			Name:       "Sarah Davis",
			Email:      "sarah.davis@docintel.com",
			Role:       entity.UserRoleApprover,
			Status:     entity.UserStatusInactive,
			LastActive: date("2024-01-10T09:45:00"),
			JoinedAt:   date("2023-09-05"),
			AvatarURL:  "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		},
	}
}

func Automations() []entity.Automation {
	lastRun := func(s string) *time.Time {
		t := date(s)
		return &t
	}
	return []entity.Automation{
		{
			Id:          "1",
			Name:        "Invoice Processing Alert",
			Description: "Send notification when new invoice is uploaded and processed",
			Trigger:     "File uploaded to Invoices folder",
			Actions:     []string{"Send Slack notification", "Log to audit trail", "Email finance team"},
			Status:      entity.AutomationStatusActive,
			LastRun:     lastRun("2024-01-15T10:30:00"),
			RunCount:    47,
		},
		{
			Id:          "2",
			Name:        "Document Approval Workflow",
			Description: "Automatically request approval for sensitive documents",
			Trigger:     "AI detects sensitive content",
			Actions:     []string{"Create approval request", "Notify approvers", "Restrict access"},
			Status:      entity.AutomationStatusActive,
			LastRun:     lastRun("2024-01-14T16:20:00"),
			RunCount:    23,
		},
		{
			Id:          "3",
			Name:        "Chat Summary Report",
			Description: "Generate weekly summary of AI chat interactions",
			Trigger:     "Every Monday at 9 AM",
			Actions:     []string{"Generate summary report", "Email to managers", "Save to reports folder"},
			Status:      entity.AutomationStatusPaused,
			LastRun:     lastRun("2024-01-08T09:00:00"),
			RunCount:    12,
		},
		{
			Id:          "4",
			Name:        "Storage Cleanup",
			Description: "Archive old files to maintain storage limits",
			Trigger:     "Storage usage > 80%",
			Actions:     []string{"Archive files older than 1 year", "Notify admin", "Update storage metrics"},
			Status:      entity.AutomationStatusDraft,
		},
	}
}

func Plans() []entity.PricingPlan {
	return []entity.PricingPlan{
		{
			Id:       entity.PlanTierFree,
			Name:     "Free",
			Features: []string{"100 uploads per month", "50 AI chats", "5GB storage", "Basic AI engines", "Email support"},
			Limits:   entity.PlanLimits{Uploads: 100, Chats: 50, Storage: 5 * gib, Users: 3},
		},
		{
			Id:            entity.PlanTierPro,
			Name:          "Pro",
			MonthlyPrice:  29,
			YearlyPrice:   290,
			Features:      []string{"1,000 uploads per month", "500 AI chats", "50GB storage", "All AI engines", "Priority support", "Advanced analytics"},
			Limits:        entity.PlanLimits{Uploads: 1000, Chats: 500, Storage: 50 * gib, Users: 10},
			IsMostPopular: true,
		},
		{
			Id:           entity.PlanTierEnterprise,
			Name:         "Enterprise",
			MonthlyPrice: 99,
			YearlyPrice:  990,
			Features:     []string{"Unlimited uploads", "Unlimited AI chats", "500GB storage", "Custom AI models", "Dedicated support", "SSO integration", "Advanced security"},
			Limits:       entity.PlanLimits{Uploads: 999999, Chats: 999999, Storage: 500 * gib, Users: 50},
		},
	}
}

func Invoices() []entity.Invoice {
	return []entity.Invoice{
		{Id: "INV-2024-001", Date: date("2024-01-01"), Amount: 29.00, Status: entity.InvoiceStatusPaid, Plan: "Pro Monthly"},
		{Id: "INV-2023-012", Date: date("2023-12-01"), Amount: 29.00, Status: entity.InvoiceStatusPaid, Plan: "Pro Monthly"},
		{Id: "INV-2023-011", Date: date("2023-11-01"), Amount: 29.00, Status: entity.InvoiceStatusPaid, Plan: "Pro Monthly"},
	}
}
