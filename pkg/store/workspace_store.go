package store

import (
	"fmt"
	"sync"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/events"
	"docintel-be/pkg/ids"
)

// WorkspaceSeed is the initial content of a workspace. Folders may be given
// nested through Children; the store keeps them flat.
type WorkspaceSeed struct {
	OwnerId      string
	Organization entity.Organization
	Documents    []*entity.Document
	Folders      []*entity.Folder
	Analytics    entity.Analytics
	Approvals    []*entity.Approval
	Members      []*entity.User
	Automations  []entity.Automation
	Plans        []entity.PricingPlan
	Invoices     []entity.Invoice
}

// UsageUpdate reports the counter of one usage kind after an update.
type UsageUpdate struct {
	Kind     entity.UsageKind
	Previous int64
	Used     int64
	Limit    int64
	Exceeded bool
}

// WorkspaceStore holds the tenant's documents, folders, usage counters and
// chat transcript. Every mutation is serialized by mu and publishes its event
// after the lock is released, in mutation order.
type WorkspaceStore struct {
	mu sync.RWMutex
	// pubMu is taken before mu is released so events leave in mutation order.
	pubMu sync.Mutex

	ownerId      string
	organization entity.Organization
	documents    []*entity.Document
	folders      []*entity.Folder
	messages     []*entity.ChatMessage
	analytics    entity.Analytics
	approvals    []*entity.Approval
	members      []*entity.User
	automations  []entity.Automation
	plans        []entity.PricingPlan
	invoices     []entity.Invoice

	now       func() time.Time
	logger    logger.ILogger
	publisher events.Publisher
}

func NewWorkspaceStore(seed WorkspaceSeed, log logger.ILogger, publisher events.Publisher) *WorkspaceStore {
	if publisher == nil {
		publisher = events.Nop
	}

	s := &WorkspaceStore{
		ownerId:      seed.OwnerId,
		organization: *seed.Organization.Clone(),
		analytics:    *seed.Analytics.Clone(),
		automations:  append([]entity.Automation(nil), seed.Automations...),
		plans:        append([]entity.PricingPlan(nil), seed.Plans...),
		invoices:     append([]entity.Invoice(nil), seed.Invoices...),
		now:          time.Now,
		logger:       log,
		publisher:    publisher,
	}
	for _, d := range seed.Documents {
		s.documents = append(s.documents, d.Clone())
	}
	s.folders = flattenFolders(seed.Folders, nil)
	for _, a := range seed.Approvals {
		s.approvals = append(s.approvals, a.Clone())
	}
	for _, m := range seed.Members {
		s.members = append(s.members, m.Clone())
	}
	return s
}

func flattenFolders(folders []*entity.Folder, out []*entity.Folder) []*entity.Folder {
	for _, f := range folders {
		out = append(out, f.Clone())
		out = flattenFolders(f.Children, out)
	}
	return out
}

// UploadDocument appends doc as given. Identifiers are not checked for
// uniqueness.
func (s *WorkspaceStore) UploadDocument(doc *entity.Document) {
	c := doc.Clone()

	s.mu.Lock()
	s.documents = append(s.documents, c)
	s.unlockAndPublish(events.New(events.DocumentUploaded, map[string]interface{}{
		"document_id": c.Id,
		"name":        c.Name,
		"folder_id":   c.FolderId,
		"size":        c.Size,
	}))

	s.logger.Info("WORKSPACE", "Document uploaded", map[string]interface{}{"document_id": c.Id, "name": c.Name})
}

// DeleteDocument removes every document with the given id. An unknown id
// leaves the collection unchanged and returns ErrDocumentNotFound.
func (s *WorkspaceStore) DeleteDocument(id string) error {
	s.mu.Lock()
	kept := s.documents[:0:0]
	for _, d := range s.documents {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(s.documents) {
		s.mu.Unlock()
		s.logger.Warn("WORKSPACE", "Delete requested for unknown document", map[string]interface{}{"document_id": id})
		return fmt.Errorf("delete %q: %w", id, ErrDocumentNotFound)
	}
	s.documents = kept
	s.unlockAndPublish(events.New(events.DocumentDeleted, map[string]interface{}{"document_id": id}))

	s.logger.Info("WORKSPACE", "Document deleted", map[string]interface{}{"document_id": id})
	return nil
}

// CreateFolder creates a folder owned by the workspace owner.
func (s *WorkspaceStore) CreateFolder(name string, parentId *string) (*entity.Folder, error) {
	return s.CreateFolderAs(name, parentId, s.ownerId)
}

// CreateFolderAs creates a folder with a time-based id. Its path is the
// parent's path plus name, or "/name" without a parent. A parent id that
// does not resolve returns ErrFolderNotFound and creates nothing.
func (s *WorkspaceStore) CreateFolderAs(name string, parentId *string, createdBy string) (*entity.Folder, error) {
	now := s.now()
	folder := &entity.Folder{
		Id:          ids.NewAt(now),
		Name:        name,
		Permissions: entity.DefaultFolderPermissions(),
		CreatedAt:   now,
		CreatedBy:   createdBy,
	}

	s.mu.Lock()
	if parentId != nil {
		parent := s.findFolderLocked(*parentId)
		if parent == nil {
			s.mu.Unlock()
			s.logger.Warn("WORKSPACE", "Folder parent not found", map[string]interface{}{"parent_id": *parentId, "name": name})
			return nil, fmt.Errorf("create folder %q under %q: %w", name, *parentId, ErrFolderNotFound)
		}
		p := parent.Id
		folder.ParentId = &p
		folder.Path = entity.ChildPath(parent.Path, name)
	} else {
		folder.Path = entity.ChildPath("", name)
	}
	s.folders = append(s.folders, folder)
	s.unlockAndPublish(events.New(events.FolderCreated, map[string]interface{}{
		"folder_id": folder.Id,
		"name":      folder.Name,
		"path":      folder.Path,
	}))

	s.logger.Info("WORKSPACE", "Folder created", map[string]interface{}{"folder_id": folder.Id, "path": folder.Path})
	return folder.Clone(), nil
}

// UpdateUsageCounter adds delta to the used counter of kind. Counters are
// not clamped to their limit; crossing it is reported through Exceeded.
func (s *WorkspaceStore) UpdateUsageCounter(kind entity.UsageKind, delta int64) (UsageUpdate, error) {
	if delta < 0 {
		return UsageUpdate{}, fmt.Errorf("%s by %d: %w", kind, delta, ErrInvalidUsageDelta)
	}

	s.mu.Lock()
	previous, limit, ok := s.organization.Usage.Counter(kind)
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("WORKSPACE", "Unknown usage kind", map[string]interface{}{"kind": string(kind)})
		return UsageUpdate{}, fmt.Errorf("%q: %w", kind, ErrUnknownUsageKind)
	}
	s.organization.Usage.Add(kind, delta)
	used, _, _ := s.organization.Usage.Counter(kind)

	update := UsageUpdate{
		Kind:     kind,
		Previous: previous,
		Used:     used,
		Limit:    limit,
		Exceeded: limit > 0 && used > limit,
	}
	payload := map[string]interface{}{
		"kind":  string(kind),
		"used":  used,
		"limit": limit,
		"delta": delta,
	}
	published := []events.Event{events.New(events.UsageUpdated, payload)}
	if update.Exceeded {
		published = append(published, events.New(events.UsageExceeded, payload))
	}
	s.unlockAndPublish(published...)

	if update.Exceeded {
		s.logger.Warn("WORKSPACE", "Usage exceeds quota", payload)
	}
	return update, nil
}

// AppendChatMessage appends msg to the transcript.
func (s *WorkspaceStore) AppendChatMessage(msg *entity.ChatMessage) {
	c := msg.Clone()

	payload := map[string]interface{}{
		"message_id": c.Id,
		"role":       string(c.Role),
	}
	if c.DocumentId != nil {
		payload["document_id"] = *c.DocumentId
	}

	s.mu.Lock()
	s.messages = append(s.messages, c)
	s.unlockAndPublish(events.New(events.ChatMessageAppended, payload))
}

// AdvanceDocumentStatus moves a document's AI status forward. A non-nil
// summary replaces the current one.
func (s *WorkspaceStore) AdvanceDocumentStatus(id string, next entity.AiStatus, summary *string) (*entity.Document, error) {
	s.mu.Lock()
	doc := s.findDocumentLocked(id)
	if doc == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("advance %q: %w", id, ErrDocumentNotFound)
	}
	previous := doc.AiStatus
	if !previous.CanTransition(next) {
		s.mu.Unlock()
		s.logger.Warn("WORKSPACE", "Rejected AI status transition", map[string]interface{}{
			"document_id": id,
			"from":        string(previous),
			"to":          string(next),
		})
		return nil, fmt.Errorf("%s -> %s: %w", previous, next, ErrInvalidStatusTransition)
	}
	doc.AiStatus = next
	if summary != nil {
		v := *summary
		doc.Summary = &v
	}
	out := doc.Clone()
	s.unlockAndPublish(events.New(events.DocumentStatusChanged, map[string]interface{}{
		"document_id": id,
		"from":        string(previous),
		"to":          string(next),
	}))
	return out, nil
}

// DecideApproval approves or rejects a pending approval on behalf of actor.
func (s *WorkspaceStore) DecideApproval(id string, decision entity.ApprovalStatus, actor string) (*entity.Approval, error) {
	if decision != entity.ApprovalStatusApproved && decision != entity.ApprovalStatusRejected {
		return nil, fmt.Errorf("%q: %w", decision, ErrInvalidApprovalDecision)
	}

	s.mu.Lock()
	var approval *entity.Approval
	for _, a := range s.approvals {
		if a.Id == id {
			approval = a
			break
		}
	}
	if approval == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("decide %q: %w", id, ErrApprovalNotFound)
	}
	if approval.Status != entity.ApprovalStatusPending {
		s.mu.Unlock()
		return nil, fmt.Errorf("decide %q: %w", id, ErrApprovalDecided)
	}
	now := s.now()
	approval.Status = decision
	approval.DecidedBy = &actor
	approval.DecidedAt = &now
	out := approval.Clone()
	s.unlockAndPublish(events.New(events.ApprovalDecided, map[string]interface{}{
		"approval_id": id,
		"status":      string(decision),
		"decided_by":  actor,
	}))

	s.logger.Info("WORKSPACE", "Approval decided", map[string]interface{}{
		"approval_id": id,
		"decision":    string(decision),
		"actor":       actor,
	})
	return out, nil
}

// unlockAndPublish releases mu, which the caller holds, and publishes evts.
// Readers see the mutation before its event is delivered.
func (s *WorkspaceStore) unlockAndPublish(evts ...events.Event) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.mu.Unlock()
	for _, evt := range evts {
		s.publisher.Publish(evt)
	}
}

func (s *WorkspaceStore) Documents() []*entity.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocuments(s.documents)
}

func (s *WorkspaceStore) Folders() []*entity.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, f.Clone())
	}
	return out
}

func (s *WorkspaceStore) Usage() entity.Usage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.organization.Usage
}

// Organization returns the organization with its current usage counters.
func (s *WorkspaceStore) Organization() *entity.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.organization.Clone()
}

func (s *WorkspaceStore) Analytics() *entity.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics.Clone()
}

func (s *WorkspaceStore) ChatMessages() []*entity.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.ChatMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m.Clone())
	}
	return out
}

func (s *WorkspaceStore) Members() []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m.Clone())
	}
	return out
}

func (s *WorkspaceStore) Automations() []entity.Automation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Automation, len(s.automations))
	for i, a := range s.automations {
		a.Actions = append([]string(nil), a.Actions...)
		out[i] = a
	}
	return out
}

func (s *WorkspaceStore) Plans() []entity.PricingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.PricingPlan, len(s.plans))
	for i, p := range s.plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func (s *WorkspaceStore) Invoices() []entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Invoice(nil), s.invoices...)
}

func (s *WorkspaceStore) findDocumentLocked(id string) *entity.Document {
	for _, d := range s.documents {
		if d.Id == id {
			return d
		}
	}
	return nil
}

func (s *WorkspaceStore) findFolderLocked(id string) *entity.Folder {
	for _, f := range s.folders {
		if f.Id == id {
			return f
		}
	}
	return nil
}

func cloneDocuments(docs []*entity.Document) []*entity.Document {
	out := make([]*entity.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Clone())
	}
	return out
}
