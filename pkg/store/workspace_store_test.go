package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strRef(s string) *string { return &s }

func fixtureSeed() WorkspaceSeed {
	root := entity.RootFolderId
	return WorkspaceSeed{
		OwnerId: "1",
		Organization: entity.Organization{
			Id:   "1",
			Name: "DocIntel Enterprise",
			Plan: entity.PlanTierEnterprise,
			Usage: entity.Usage{
				UploadsUsed: 689, UploadsLimit: 1000,
				ChatsUsed: 1432, ChatsLimit: 2000,
				StorageUsed: 45600000000, StorageLimit: 107374182400,
				Period: entity.BillingPeriodMonthly,
			},
		},
		Folders: []*entity.Folder{
			{
				Id:          root,
				Name:        "Root",
				Path:        "/",
				Permissions: entity.DefaultFolderPermissions(),
				Children: []*entity.Folder{
					{Id: "invoices", Name: "Invoices", ParentId: &root, Path: "/invoices"},
					{Id: "reports", Name: "Reports", ParentId: &root, Path: "/reports"},
				},
			},
		},
		Documents: []*entity.Document{
			{Id: "1", Name: "Q4 Financial Report.pdf", FolderId: "reports", Tags: []string{"financial", "q4"}, UploadedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), AiStatus: entity.AiStatusCompleted},
			{Id: "2", Name: "Invoice_2024_001.pdf", FolderId: "invoices", Tags: []string{"invoice", "Payment"}, UploadedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), AiStatus: entity.AiStatusCompleted},
			{Id: "3", Name: "Service Agreement.docx", FolderId: "contracts", Tags: []string{"contract"}, UploadedAt: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), AiStatus: entity.AiStatusProcessing},
		},
		Approvals: []*entity.Approval{
			{Id: "1", Status: entity.ApprovalStatusPending},
			{Id: "2", Status: entity.ApprovalStatusPending},
		},
		Members: []*entity.User{
			{Id: "1", Name: "Robert Edwards", Email: "robert.edwards@docintel.com", Role: entity.UserRoleAdmin},
			{Id: "2", Name: "Jane Smith", Email: "jane.smith@docintel.com", Role: entity.UserRoleUploader},
			{Id: "3", Name: "Mike Johnson", Email: "mike.johnson@docintel.com", Role: entity.UserRoleViewer},
		},
	}
}

func newTestWorkspace(t *testing.T, publisher events.Publisher) *WorkspaceStore {
	t.Helper()
	return NewWorkspaceStore(fixtureSeed(), logger.NewNopLogger(), publisher)
}

func documentIds(docs []*entity.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Id)
	}
	return out
}

func TestWorkspaceStore_UploadThenDeleteRestoresCollection(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	before := ws.Documents()

	ws.UploadDocument(&entity.Document{Id: "new", Name: "Contract.pdf", Tags: []string{"draft"}, AiStatus: entity.AiStatusPending})
	assert.Len(t, ws.Documents(), len(before)+1)

	require.NoError(t, ws.DeleteDocument("new"))

	assert.Equal(t, before, ws.Documents())
}

func TestWorkspaceStore_UploadDoesNotDeduplicate(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	ws.UploadDocument(&entity.Document{Id: "1", Name: "duplicate"})

	assert.Len(t, ws.Documents(), 4)
}

func TestWorkspaceStore_DeleteUnknownDocument(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	before := ws.Documents()

	err := ws.DeleteDocument("missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, before, ws.Documents())
}

func TestWorkspaceStore_ReadsReturnCopies(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	docs := ws.Documents()
	docs[0].Name = "mutated"
	docs[0].Tags[0] = "mutated"

	fresh, err := ws.FindDocument(docs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Q4 Financial Report.pdf", fresh.Name)
	assert.Equal(t, "financial", fresh.Tags[0])
}

func TestWorkspaceStore_CreateFolder(t *testing.T) {
	cases := []struct {
		name     string
		folder   string
		parentId *string
		wantPath string
	}{
		{"under root", "X", strRef(entity.RootFolderId), "/X"},
		{"under child", "2024", strRef("invoices"), "/invoices/2024"},
		{"without parent", "Misc", nil, "/Misc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ws := newTestWorkspace(t, nil)

			folder, err := ws.CreateFolder(tc.folder, tc.parentId)

			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, folder.Path)
			assert.Equal(t, tc.parentId, folder.ParentId)
			assert.Equal(t, "1", folder.CreatedBy)
			assert.Equal(t, entity.DefaultFolderPermissions(), folder.Permissions)
			assert.NotEmpty(t, folder.Id)

			found, err := ws.FindFolder(folder.Id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, found.Path)
		})
	}
}

func TestWorkspaceStore_CreateFolderUnknownParent(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	before := ws.Folders()

	folder, err := ws.CreateFolder("Y", strRef("nonexistent"))

	assert.Nil(t, folder)
	assert.ErrorIs(t, err, ErrFolderNotFound)
	assert.NotContains(t, err.Error(), "undefined")
	assert.Equal(t, before, ws.Folders())
}

func TestWorkspaceStore_CreateFolderIdsAreUnique(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		f, err := ws.CreateFolder(fmt.Sprintf("f%d", i), nil)
		require.NoError(t, err)
		assert.False(t, seen[f.Id], "duplicate id %s", f.Id)
		seen[f.Id] = true
	}
}

func TestWorkspaceStore_NestedCreateUsesNewFolderAsParent(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	parent, err := ws.CreateFolder("Legal", strRef(entity.RootFolderId))
	require.NoError(t, err)
	child, err := ws.CreateFolder("NDA", &parent.Id)
	require.NoError(t, err)

	assert.Equal(t, "/Legal/NDA", child.Path)
}

func TestWorkspaceStore_FolderTree(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	_, err := ws.CreateFolder("2024", strRef("invoices"))
	require.NoError(t, err)

	tree := ws.FolderTree()

	require.Len(t, tree, 1)
	assert.Equal(t, entity.RootFolderId, tree[0].Id)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "invoices", tree[0].Children[0].Id)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "/invoices/2024", tree[0].Children[0].Children[0].Path)
}

func TestWorkspaceStore_UsageIsAdditive(t *testing.T) {
	kinds := []struct {
		kind    entity.UsageKind
		initial int64
	}{
		{entity.UsageKindUploads, 689},
		{entity.UsageKindChats, 1432},
		{entity.UsageKindStorage, 45600000000},
	}
	deltas := [][2]int64{{0, 0}, {1, 1}, {7, 3}, {3, 7}, {250, 0}}

	for _, k := range kinds {
		for _, d := range deltas {
			t.Run(fmt.Sprintf("%s_%d_%d", k.kind, d[0], d[1]), func(t *testing.T) {
				ws := newTestWorkspace(t, nil)

				_, err := ws.UpdateUsageCounter(k.kind, d[0])
				require.NoError(t, err)
				update, err := ws.UpdateUsageCounter(k.kind, d[1])
				require.NoError(t, err)

				used, _, _ := ws.Usage().Counter(k.kind)
				assert.Equal(t, k.initial+d[0]+d[1], used)
				assert.Equal(t, used, update.Used)
				orgUsed, _, _ := ws.Organization().Usage.Counter(k.kind)
				assert.Equal(t, used, orgUsed)
			})
		}
	}
}

func TestWorkspaceStore_UsageRejectsBadInput(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	before := ws.Usage()

	_, err := ws.UpdateUsageCounter("bandwidth", 1)
	assert.ErrorIs(t, err, ErrUnknownUsageKind)

	_, err = ws.UpdateUsageCounter(entity.UsageKindChats, -1)
	assert.ErrorIs(t, err, ErrInvalidUsageDelta)

	assert.Equal(t, before, ws.Usage())
}

func TestWorkspaceStore_UsageExceededIsReportedNotClamped(t *testing.T) {
	rec := newRecorder()
	ws := newTestWorkspace(t, rec)

	update, err := ws.UpdateUsageCounter(entity.UsageKindUploads, 400)

	require.NoError(t, err)
	assert.True(t, update.Exceeded)
	assert.Equal(t, int64(1089), update.Used)
	assert.Equal(t, int64(689), update.Previous)
	assert.Equal(t, int64(1000), update.Limit)

	assert.Equal(t, events.UsageUpdated, (<-rec.events).EventType())
	exceeded := <-rec.events
	assert.Equal(t, events.UsageExceeded, exceeded.EventType())
	assert.Equal(t, "uploads", exceeded.Payload()["kind"])
}

func TestWorkspaceStore_ChatTranscriptKeepsInsertionOrder(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	m1 := &entity.ChatMessage{Id: "m1", Role: entity.ChatRoleUser, Content: "hello"}
	m2 := &entity.ChatMessage{Id: "m2", Role: entity.ChatRoleAssistant, Content: "hi"}
	m3 := &entity.ChatMessage{Id: "m3", Role: entity.ChatRoleUser, Content: "summarize", DocumentId: strRef("1")}

	ws.AppendChatMessage(m1)
	ws.AppendChatMessage(m2)
	ws.AppendChatMessage(m3)

	assert.Equal(t, []*entity.ChatMessage{m1, m2, m3}, ws.ChatMessages())
}

func TestWorkspaceStore_ConcurrentMutations(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = ws.UpdateUsageCounter(entity.UsageKindChats, 1)
		}(i)
		go func(i int) {
			defer wg.Done()
			ws.AppendChatMessage(&entity.ChatMessage{Id: fmt.Sprintf("m%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1532), ws.Usage().ChatsUsed)
	assert.Len(t, ws.ChatMessages(), 100)
}

func TestWorkspaceStore_EventsFollowMutationOrder(t *testing.T) {
	var mu sync.Mutex
	var published []int64
	ws := newTestWorkspace(t, events.PublisherFunc(func(evt events.Event) {
		if evt.EventType() != events.UsageUpdated {
			return
		}
		mu.Lock()
		published = append(published, evt.Payload()["used"].(int64))
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ws.UpdateUsageCounter(entity.UsageKindChats, 1)
		}()
	}
	wg.Wait()

	require.Len(t, published, 50)
	for i, used := range published {
		assert.Equal(t, int64(1433+i), used)
	}
	assert.Equal(t, int64(1482), ws.Usage().ChatsUsed)
}

func TestWorkspaceStore_DocumentQueries(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	cases := []struct {
		name   string
		folder string
		text   string
		want   []string
	}{
		{"all", "", "", []string{"1", "2", "3"}},
		{"by folder", "invoices", "", []string{"2"}},
		{"by name case-insensitive", "", "FINANCIAL", []string{"1"}},
		{"by tag", "", "payment", []string{"2"}},
		{"by shared substring", "", "re", []string{"1", "3"}},
		{"folder and text", "reports", "invoice", []string{}},
		{"no match", "", "zzz", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, documentIds(ws.FilterDocuments(tc.folder, tc.text)))
		})
	}

	assert.Equal(t, []string{"2"}, documentIds(ws.DocumentsInFolder("invoices")))
	assert.Equal(t, []string{"1"}, documentIds(ws.DocumentsMatching("q4")))
}

func TestWorkspaceStore_RecentDocuments(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	ws.UploadDocument(&entity.Document{Id: "4", UploadedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})

	assert.Equal(t, []string{"4", "1"}, documentIds(ws.RecentDocuments(2)))
	assert.Len(t, ws.RecentDocuments(10), 4)
}

func TestWorkspaceStore_AdvanceDocumentStatus(t *testing.T) {
	rec := newRecorder()
	ws := newTestWorkspace(t, rec)

	doc, err := ws.AdvanceDocumentStatus("3", entity.AiStatusCompleted, strRef("Service terms"))
	require.NoError(t, err)
	assert.Equal(t, entity.AiStatusCompleted, doc.AiStatus)
	assert.Equal(t, "Service terms", *doc.Summary)
	assert.Equal(t, events.DocumentStatusChanged, (<-rec.events).EventType())

	_, err = ws.AdvanceDocumentStatus("3", entity.AiStatusProcessing, nil)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = ws.AdvanceDocumentStatus("missing", entity.AiStatusProcessing, nil)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestWorkspaceStore_DecideApproval(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	approval, err := ws.DecideApproval("1", entity.ApprovalStatusApproved, "Robert Edwards")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, approval.Status)
	require.NotNil(t, approval.DecidedBy)
	assert.Equal(t, "Robert Edwards", *approval.DecidedBy)

	_, err = ws.DecideApproval("1", entity.ApprovalStatusRejected, "Robert Edwards")
	assert.ErrorIs(t, err, ErrApprovalDecided)

	_, err = ws.DecideApproval("2", entity.ApprovalStatusPending, "Robert Edwards")
	assert.ErrorIs(t, err, ErrInvalidApprovalDecision)

	_, err = ws.DecideApproval("9", entity.ApprovalStatusRejected, "Robert Edwards")
	assert.ErrorIs(t, err, ErrApprovalNotFound)

	assert.Len(t, ws.Approvals(entity.ApprovalStatusPending), 1)
	assert.Len(t, ws.Approvals(entity.ApprovalStatusApproved), 1)
	assert.Len(t, ws.Approvals(""), 2)
}

func TestWorkspaceStore_Members(t *testing.T) {
	ws := newTestWorkspace(t, nil)

	assert.Len(t, ws.MembersMatching("", ""), 3)
	assert.Len(t, ws.MembersMatching("JANE", ""), 1)
	assert.Len(t, ws.MembersMatching("docintel.com", entity.UserRoleViewer), 1)
	assert.Empty(t, ws.MembersMatching("jane", entity.UserRoleAdmin))

	counts := ws.RoleCounts()
	assert.Equal(t, 1, counts[entity.UserRoleAdmin])
	assert.Equal(t, 0, counts[entity.UserRoleApprover])
}
