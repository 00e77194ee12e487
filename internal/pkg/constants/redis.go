package constants

// Redis keys
const (
	// JSON array of every daily summary row as of the last refresh
	KeyDailySummaryAll = "summary:daily:all"

	// Prefix of the fixed-window counters kept by the rate limiter
	KeyRateLimitPrefix = "ratelimit"
)
