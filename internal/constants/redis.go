package constants

import "time"

// Redis cache keys
const (
	// RedisKeyProjectStatsPrefix + projectID holds the cached JSON of a
	// project's task-count aggregation.
	RedisKeyProjectStatsPrefix = "taskly:project:stats:"
)

// Cache TTLs
const (
	ProjectStatsTTL = 60 * time.Second
)
