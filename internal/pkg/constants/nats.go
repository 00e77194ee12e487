package constants

// NATS subjects
const (
	// Trigger for an on-demand summary refresh; replies carry the refresh result
	SubjectSummaryRefreshRequested = "summary.refresh.requested"
	// Published after a refresh commits
	SubjectSummaryRefreshed = "summary.refreshed"
)
