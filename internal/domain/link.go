package domain

// SyncAction enumerates what the sync step did for one item.
type SyncAction string

const (
	SyncCreated SyncAction = "created"
	SyncUpdated SyncAction = "updated"
	SyncSkipped SyncAction = "skipped"
	SyncRan     SyncAction = "ran"
	SyncFailed  SyncAction = "failed"
)

// SyncResult records the outcome of one create/link/run item.
type SyncResult struct {
	Kind    string // "file", "dir", "link", "run"
	Path    string
	Target  string // link target, empty otherwise
	Action  SyncAction
	Details string
}
