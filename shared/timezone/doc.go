// Package timezone keeps every timestamp the service produces in one configured location.
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported:
//
//	now := timezone.Now()
//	travel, err := timezone.ParseDate("2006-01-02", "2025-12-24")
//	formatted := timezone.Format(now, time.RFC3339)
//
// Use IANA names such as "UTC", "Asia/Kolkata" or "Europe/London".
package timezone
