package tidyxl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeFromSerial1900(t *testing.T) {
	require.Equal(t, time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), timeFromSerial(1, false))
	require.Equal(t, time.Date(1900, 2, 27, 0, 0, 0, 0, time.UTC), timeFromSerial(59, false))
	// Serial 60 is Excel's fictitious 1900-02-29: with the leap bug
	// preserved it collapses onto the 28th, and serials past it stay
	// aligned with the calendar dates Excel displays.
	require.Equal(t, time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC), timeFromSerial(60, false))
	require.Equal(t, time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC), timeFromSerial(61, false))
	require.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), timeFromSerial(43831, false))
}

func TestTimeFromSerial1904(t *testing.T) {
	require.Equal(t, time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), timeFromSerial(0, true))
	require.Equal(t, time.Date(1904, 1, 2, 0, 0, 0, 0, time.UTC), timeFromSerial(1, true))
	require.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), timeFromSerial(42369, true))
}

func TestTimeFromSerialFraction(t *testing.T) {
	require.Equal(t, time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC), timeFromSerial(43831.5, false))
	require.Equal(t, time.Date(2020, 1, 1, 6, 30, 15, 0, time.UTC), timeFromSerial(43831+(6*3600+30*60+15)/86400.0, false))
	// The fraction rounds to the nearest second.
	require.Equal(t, time.Date(2020, 1, 1, 23, 59, 59, 0, time.UTC), timeFromSerial(43831.99999, false))
	require.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), timeFromSerial(43831.9999999, false))
}
