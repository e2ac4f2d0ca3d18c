package events

// Workspace and session event codes. Subjects on the bus are "events.<code>".
const (
	DocumentUploaded      = "DOCUMENT_UPLOADED"
	DocumentDeleted       = "DOCUMENT_DELETED"
	DocumentStatusChanged = "DOCUMENT_STATUS_CHANGED"
	FolderCreated         = "FOLDER_CREATED"
	UsageUpdated          = "USAGE_UPDATED"
	UsageExceeded         = "USAGE_EXCEEDED"
	ChatMessageAppended   = "CHAT_MESSAGE_APPENDED"
	ApprovalDecided       = "APPROVAL_DECIDED"

	SessionLoggedIn  = "SESSION_LOGGED_IN"
	SessionLoggedOut = "SESSION_LOGGED_OUT"
)

// Publisher receives events after the corresponding mutation has been applied.
type Publisher interface {
	Publish(evt Event)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(evt Event)

func (f PublisherFunc) Publish(evt Event) {
	f(evt)
}

// Nop drops every event.
var Nop Publisher = PublisherFunc(func(Event) {})

// Fanout delivers each event to every publisher in order.
type Fanout []Publisher

func (f Fanout) Publish(evt Event) {
	for _, p := range f {
		if p != nil {
			p.Publish(evt)
		}
	}
}
