package relationship

// Status is the connection state between a viewer and another user, as seen
// from the viewer's side. It is derived from the single persisted
// Relationship record on every read and never stored, so the two parties'
// views cannot drift apart.
type Status string

const (
	// StatusConnected means the pair has an accepted connection.
	StatusConnected Status = "connected"

	// StatusPendingOutgoing means the viewer sent a request that is still pending.
	StatusPendingOutgoing Status = "pending_outgoing"

	// StatusPendingIncoming means the viewer received a request that is still pending.
	StatusPendingIncoming Status = "pending_incoming"

	// StatusNotConnected means no record exists, or the record is rejected or
	// blocked. Rejected and blocked are never surfaced as their own
	// viewer-facing states; blocked pairs are additionally excluded from
	// search and recommendations entirely.
	StatusNotConnected Status = "not_connected"
)
