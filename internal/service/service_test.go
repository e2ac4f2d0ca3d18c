package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/seed"
	"docintel-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *store.WorkspaceStore {
	t.Helper()
	return store.NewWorkspaceStore(seed.Workspace(time.Now()), logger.NewNopLogger(), nil)
}

type capturePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return p.err
}

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		689:     "689",
		1432:    "1,432",
		2847:    "2,847",
		1000000: "1,000,000",
		-12345:  "-12,345",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCount(in), "formatCount(%d)", in)
	}
}

func TestDocumentService_UploadChargesQuotaAndQueuesProcessing(t *testing.T) {
	ws := newTestWorkspace(t)
	pub := &capturePublisher{}
	svc := NewDocumentService(ws, pub, 50<<20, logger.NewNopLogger())
	before := ws.Usage()

	res, err := svc.Upload(context.Background(), &dto.UploadDocumentRequest{
		Name:     "Budget.xlsx",
		Type:     "application/vnd.ms-excel",
		Size:     4096,
		FolderId: "reports",
		Tags:     []string{"budget"},
	}, seed.ActorId)
	require.NoError(t, err)

	assert.Equal(t, "pending", res.Document.AiStatus)
	assert.Equal(t, "openai", *res.Document.AiEngine)
	assert.Equal(t, seed.ActorId, res.Document.UploadedBy)

	after := ws.Usage()
	assert.Equal(t, before.UploadsUsed+1, after.UploadsUsed)
	assert.Equal(t, before.StorageUsed+4096, after.StorageUsed)
	assert.Len(t, res.Usage, 3)

	require.Len(t, pub.payloads, 1)
	var msg dto.ProcessDocumentMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, res.Document.Id, msg.DocumentId)

	found, err := ws.FindDocument(res.Document.Id)
	require.NoError(t, err)
	assert.Equal(t, "Budget.xlsx", found.Name)
}

func TestDocumentService_UploadRejections(t *testing.T) {
	ws := newTestWorkspace(t)
	pub := &capturePublisher{}
	svc := NewDocumentService(ws, pub, 1024, logger.NewNopLogger())
	count := len(ws.Documents())

	_, err := svc.Upload(context.Background(), &dto.UploadDocumentRequest{Name: "big.pdf", Type: "application/pdf", Size: 2048, FolderId: "reports"}, "1")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Upload(context.Background(), &dto.UploadDocumentRequest{Name: "a.pdf", Type: "application/pdf", Size: 10, FolderId: "nope"}, "1")
	assert.ErrorIs(t, err, store.ErrFolderNotFound)

	assert.Len(t, ws.Documents(), count)
	assert.Empty(t, pub.payloads)
}

func TestDocumentService_List(t *testing.T) {
	svc := NewDocumentService(newTestWorkspace(t), &capturePublisher{}, 0, logger.NewNopLogger())

	cases := []struct {
		name   string
		req    dto.ListDocumentsRequest
		expect []string
	}{
		{"all", dto.ListDocumentsRequest{}, []string{"1", "2", "3"}},
		{"folder", dto.ListDocumentsRequest{FolderId: "invoices"}, []string{"2"}},
		{"search by tag", dto.ListDocumentsRequest{Search: "CONTRACT"}, []string{"3"}},
		{"folder and search miss", dto.ListDocumentsRequest{FolderId: "reports", Search: "invoice"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.List(context.Background(), &tc.req)
			require.NoError(t, err)
			ids := make([]string, 0)
			for _, d := range res.Documents {
				ids = append(ids, d.Id)
			}
			assert.Equal(t, tc.expect, ids)
			assert.Equal(t, len(tc.expect), res.Total)
		})
	}

	_, err := svc.List(context.Background(), &dto.ListDocumentsRequest{FolderId: "missing"})
	assert.ErrorIs(t, err, store.ErrFolderNotFound)
}

func TestDocumentService_Delete(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewDocumentService(ws, &capturePublisher{}, 0, logger.NewNopLogger())

	require.NoError(t, svc.Delete(context.Background(), "2"))
	_, err := svc.Show(context.Background(), "2")
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "2"), store.ErrDocumentNotFound)
}

func TestFolderService_CreateAndTree(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewFolderService(ws, logger.NewNopLogger())

	parent := "invoices"
	created, err := svc.Create(context.Background(), &dto.CreateFolderRequest{Name: " 2024 ", ParentId: &parent}, "2")
	require.NoError(t, err)
	assert.Equal(t, "/invoices/2024", created.Path)
	assert.Equal(t, "2", created.CreatedBy)

	blank := "  "
	top, err := svc.Create(context.Background(), &dto.CreateFolderRequest{Name: "Archive", ParentId: &blank}, "1")
	require.NoError(t, err)
	assert.Nil(t, top.ParentId)
	assert.Equal(t, "/Archive", top.Path)

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, entity.RootFolderId, tree[0].Id)
	assert.Equal(t, "Archive", tree[1].Name)
}

func TestChatbotService_ReplyMentionsSelectedDocument(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewChatbotService(ws, 0, logger.NewNopLogger())
	defer svc.Close()
	chatsBefore := ws.Usage().ChatsUsed

	docId := "1"
	res, err := svc.Send(context.Background(), &dto.SendChatRequest{Message: "Please summarize this document", DocumentId: &docId})
	require.NoError(t, err)
	assert.False(t, res.PendingReply)
	assert.Equal(t, "user", res.Message.Role)

	msgs := ws.ChatMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.ChatRoleAssistant, msgs[1].Role)
	assert.Equal(t,
		`Based on the analysis of "Q4 Financial Report.pdf", I can provide insights about your query. This document contains information about Q4 financial report showing 15% revenue growth and improved operational efficiency. What specific aspect would you like me to elaborate on?`,
		msgs[1].Content)
	assert.Equal(t, chatsBefore+1, ws.Usage().ChatsUsed)
}

func TestChatbotService_ReplyWithoutSummaryOrDocument(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewChatbotService(ws, 0, logger.NewNopLogger())
	defer svc.Close()

	docId := "3"
	_, err := svc.Send(context.Background(), &dto.SendChatRequest{Message: "hi", DocumentId: &docId})
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), &dto.SendChatRequest{Message: "hello"})
	require.NoError(t, err)

	msgs := ws.ChatMessages()
	require.Len(t, msgs, 4)
	assert.Contains(t, msgs[1].Content, "information about various topics.")
	assert.Equal(t, chatNoDocument, msgs[3].Content)
}

func TestChatbotService_SendRejections(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewChatbotService(ws, 0, logger.NewNopLogger())
	defer svc.Close()

	missing := "404"
	_, err := svc.Send(context.Background(), &dto.SendChatRequest{Message: "hi", DocumentId: &missing})
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)

	_, err = svc.Send(context.Background(), &dto.SendChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	assert.Empty(t, ws.ChatMessages())
}

func TestChatbotService_CloseDropsPendingReply(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewChatbotService(ws, time.Hour, logger.NewNopLogger())

	res, err := svc.Send(context.Background(), &dto.SendChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.True(t, res.PendingReply)

	svc.Close()
	assert.Len(t, ws.ChatMessages(), 1)

	_, err = svc.Send(context.Background(), &dto.SendChatRequest{Message: "again"})
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}

func TestChatbotService_DelayedReplyArrives(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewChatbotService(ws, 10*time.Millisecond, logger.NewNopLogger())
	defer svc.Close()

	_, err := svc.Send(context.Background(), &dto.SendChatRequest{Message: "hi"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(ws.ChatMessages()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestChatbotService_Transcript(t *testing.T) {
	svc := NewChatbotService(newTestWorkspace(t), 0, logger.NewNopLogger())
	defer svc.Close()

	res, err := svc.Transcript(context.Background())
	require.NoError(t, err)
	assert.Equal(t, chatGreeting, res.Greeting.Content)
	assert.Empty(t, res.Messages)
	require.Len(t, res.Actions, 4)
	assert.Equal(t, "Summarize", res.Actions[0].Label)
	assert.Equal(t, "List any action items or next steps", res.Actions[3].Prompt)
}
