// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// WizardSessionPrefix is the prefix for wizard session keys.
const WizardSessionPrefix = "wizard:"

// WizardSessionTTL bounds how long an abandoned wizard session survives.
const WizardSessionTTL = 30 * time.Minute

// DraftHandoffPrefix is the prefix for quick-book draft handoff keys.
const DraftHandoffPrefix = "draft:"

// DraftHandoffTTL bounds how long a quick-book draft waits to be claimed.
const DraftHandoffTTL = time.Hour
