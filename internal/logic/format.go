package logic

import (
	"strconv"
	"time"
)

// The v1 wire convention renders every number as a decimal string and
// timestamps as "YYYY-MM-DD HH:MM:SS" in UTC. Internals stay typed; these
// helpers exist only for the serialization boundary.

const wireTimeLayout = "2006-01-02 15:04:05"

func wireInt(n int) string {
	return strconv.Itoa(n)
}

func wireInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

func wireFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func wireTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}

func wireUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(wireTimeLayout)
}

// wireBool renders replay availability as "1"/"0".
func wireBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
