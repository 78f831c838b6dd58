// Package biztime centralizes business-time handling. All persisted
// timestamps are UTC.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
