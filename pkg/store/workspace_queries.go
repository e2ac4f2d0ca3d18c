package store

import (
	"sort"
	"strings"

	"docintel-be/internal/entity"
)

// DocumentsInFolder returns the documents whose folder is folderId.
func (s *WorkspaceStore) DocumentsInFolder(folderId string) []*entity.Document {
	return s.FilterDocuments(folderId, "")
}

// DocumentsMatching returns the documents whose name or any tag contains
// text, case-insensitively. Empty text matches every document.
func (s *WorkspaceStore) DocumentsMatching(text string) []*entity.Document {
	return s.FilterDocuments("", text)
}

// FilterDocuments combines the folder and text filters. An empty folderId
// means any folder.
func (s *WorkspaceStore) FilterDocuments(folderId, text string) []*entity.Document {
	needle := strings.ToLower(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Document, 0)
	for _, d := range s.documents {
		if folderId != "" && d.FolderId != folderId {
			continue
		}
		if !documentMatches(d, needle) {
			continue
		}
		out = append(out, d.Clone())
	}
	return out
}

func documentMatches(d *entity.Document, needle string) bool {
	if needle == "" || strings.Contains(strings.ToLower(d.Name), needle) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// RecentDocuments returns up to n documents, newest upload first. Documents
// uploaded at the same instant keep their collection order.
func (s *WorkspaceStore) RecentDocuments(n int) []*entity.Document {
	docs := s.Documents()
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UploadedAt.After(docs[j].UploadedAt)
	})
	if n >= 0 && len(docs) > n {
		docs = docs[:n]
	}
	return docs
}

func (s *WorkspaceStore) FindDocument(id string) (*entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDocumentLocked(id); d != nil {
		return d.Clone(), nil
	}
	return nil, ErrDocumentNotFound
}

func (s *WorkspaceStore) FindFolder(id string) (*entity.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f := s.findFolderLocked(id); f != nil {
		return f.Clone(), nil
	}
	return nil, ErrFolderNotFound
}

// FolderTree rebuilds the folder hierarchy from the flat collection. Folders
// whose parent is missing are returned as roots.
func (s *WorkspaceStore) FolderTree() []*entity.Folder {
	flat := s.Folders()

	byId := make(map[string]*entity.Folder, len(flat))
	for _, f := range flat {
		byId[f.Id] = f
	}

	roots := make([]*entity.Folder, 0)
	for _, f := range flat {
		if f.ParentId != nil {
			if parent, ok := byId[*f.ParentId]; ok && parent != f {
				parent.Children = append(parent.Children, f)
				continue
			}
		}
		roots = append(roots, f)
	}
	return roots
}

// Approvals returns approvals with the given status, or all of them when
// status is empty.
func (s *WorkspaceStore) Approvals(status entity.ApprovalStatus) []*entity.Approval {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Approval, 0)
	for _, a := range s.approvals {
		if status == "" || a.Status == status {
			out = append(out, a.Clone())
		}
	}
	return out
}

// MembersMatching searches members by name or email and filters by role.
// An empty role matches every role.
func (s *WorkspaceStore) MembersMatching(text string, role entity.UserRole) []*entity.User {
	needle := strings.ToLower(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.User, 0)
	for _, m := range s.members {
		if role != "" && m.Role != role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(m.Name), needle) &&
			!strings.Contains(strings.ToLower(m.Email), needle) {
			continue
		}
		out = append(out, m.Clone())
	}
	return out
}

// RoleCounts counts members per role.
func (s *WorkspaceStore) RoleCounts() map[entity.UserRole]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[entity.UserRole]int)
	for _, m := range s.members {
		counts[m.Role]++
	}
	return counts
}
