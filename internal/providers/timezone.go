package providers

import "time"

// ResolveTimezone loads the IANA location named by tz. Empty or unknown
// names yield nil so callers fall back to their own default zone.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
