package util

import "time"

const (
	// ISTMillisFormat is ISO-8601 with millisecond precision and a
	// numeric UTC offset, e.g. 2024-01-02T15:04:05.000+05:30.
	ISTMillisFormat = "2006-01-02T15:04:05.000-07:00"

	istZoneName = "Asia/Kolkata"
)

// istLocation is resolved once at startup. Asia/Kolkata is a fixed
// +05:30 offset, so the FixedZone fallback is exact even without tzdata.
var istLocation = loadISTLocation()

func loadISTLocation() *time.Location {
	loc, err := time.LoadLocation(istZoneName)
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// NowIST returns the current instant in the Asia/Kolkata timezone,
// regardless of host locale.
func NowIST() time.Time {
	return time.Now().In(istLocation)
}

// FormatISTMillis expresses t in Asia/Kolkata and formats it with
// ISTMillisFormat.
func FormatISTMillis(t time.Time) string {
	return t.In(istLocation).Format(ISTMillisFormat)
}
