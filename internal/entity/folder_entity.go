package entity

import "time"

const (
	FolderActionRead   = "read"
	FolderActionWrite  = "write"
	FolderActionDelete = "delete"

	RootFolderId = "root"
)

type Folder struct {
	Id          string
	Name        string
	ParentId    *string
	Path        string
	Permissions map[string][]string // role -> allowed actions
	CreatedAt   time.Time
	CreatedBy   string
	Children    []*Folder
}

func (f *Folder) Clone() *Folder {
	if f == nil {
		return nil
	}
	c := *f
	if f.ParentId != nil {
		p := *f.ParentId
		c.ParentId = &p
	}
	c.Permissions = make(map[string][]string, len(f.Permissions))
	for role, actions := range f.Permissions {
		c.Permissions[role] = append([]string(nil), actions...)
	}
	c.Children = nil
	return &c
}

// DefaultFolderPermissions grants full control to admins only.
func DefaultFolderPermissions() map[string][]string {
	return map[string][]string{
		string(UserRoleAdmin): {FolderActionRead, FolderActionWrite, FolderActionDelete},
	}
}

// ChildPath joins a parent path and a folder name into a materialized path.
// The root path "/" does not produce a double slash.
func ChildPath(parentPath, name string) string {
	if parentPath == "" || parentPath == "/" {
		return "/" + name
	}
	return parentPath + "/" + name
}
