package jwt

import "time"

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 8 * time.Hour
