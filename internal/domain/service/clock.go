package service

import "time"

// Clock returns the current time. Detail views read it to word delivery estimates.
type Clock func() time.Time
