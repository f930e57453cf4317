// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// CartSessionPrefix is the prefix used for Redis cart session keys.
const CartSessionPrefix = "cart:"

// CartSessionTTL is how long an idle cart survives before expiring.
const CartSessionTTL = 30 * time.Minute
