package tidyxl

// The 1900 system counts from a single 1899-12-30 epoch, so serial 1
// is 1899-12-31 and the fictitious 1900-02-29 (serial 60) collapses
// onto 1900-02-28. Excel's own leap-year bug is preserved rather than
// corrected; serials from 61 up land on the dates Excel displays.

import (
	"math"
	"time"
)

var (
	excel1900Epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	excel1904Epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// timeFromSerial converts an Excel serial day count into a time.Time.
// The fractional part is a time-of-day offset, rounded to the nearest
// second.
func timeFromSerial(serial float64, date1904 bool) time.Time {
	days := int(serial)
	secs := int(math.Round((serial - float64(days)) * 86400))
	if secs == 86400 {
		days++
		secs = 0
	}

	epoch := excel1900Epoch
	if date1904 {
		epoch = excel1904Epoch
	}

	return epoch.AddDate(0, 0, days).Add(time.Duration(secs) * time.Second)
}
