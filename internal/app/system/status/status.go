// internal/app/system/status/status.go
package status

// Record statuses shared by users, groups, and territories.
const (
	Active   = "active"
	Archived = "archived"
	Disabled = "disabled"
)

// Post lifecycle statuses. The publishing engine owns the
// pending -> ready -> posted/failed transitions; this app only
// creates pending posts and reads the rest.
const (
	PostPending = "pending"
	PostReady   = "ready"
	PostPosted  = "posted"
	PostFailed  = "failed"
)

// Scheduled returns the statuses that count as "scheduled but not yet
// published". Returned as a fresh slice so callers can pass it straight
// into a $in filter.
func Scheduled() []string {
	return []string{PostPending, PostReady}
}
