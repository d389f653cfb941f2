// File: utils/constants.go
package utils

import "time"

// AdCachePrefix is the prefix used for Redis advertisement cache keys.
const AdCachePrefix = "ad:"

// AdCacheTTL is the time-to-live for cached advertisements.
const AdCacheTTL = 10 * time.Minute
