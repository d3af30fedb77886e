package utils

import "time"

// SelectionCachePrefix is the prefix used for Redis selection session keys.
const SelectionCachePrefix = "selection:"

// SelectionCacheTTL is the time-to-live for a visitor's selection session.
const SelectionCacheTTL = 30 * time.Minute

// CalendarCacheKey is the cache key for the computed calendar payload.
const CalendarCacheKey = "calendar:events"

// CalendarCacheTTL is the time-to-live for the cached calendar payload.
const CalendarCacheTTL = 1 * time.Minute
