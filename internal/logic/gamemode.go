package logic

import (
	"math"
	"strconv"
)

// The legacy surface knows four gamemodes. Anything else normalizes to the
// primary mode rather than erroring; the historical API was permissive and
// clients depend on that.
const (
	ModeOsu = iota
	ModeTaiko
	ModeFruits
	ModeMania
)

// DefaultLimit and the clamp range for result-count parameters.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var modeNames = map[string]int{
	"osu":    ModeOsu,
	"taiko":  ModeTaiko,
	"fruits": ModeFruits,
	"mania":  ModeMania,
}

// IsNumeric reports whether the token parses as a finite number. This is
// the id/username disambiguation test: bare digits, signed and float forms
// all count.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NormalizeMode maps a v1 mode parameter onto 0..3. Out-of-range and
// non-numeric values fall back to the primary mode.
func NormalizeMode(raw string) int {
	if !IsNumeric(raw) {
		return ModeOsu
	}
	m, err := strconv.Atoi(raw)
	if err != nil || m < ModeOsu || m > ModeMania {
		return ModeOsu
	}
	return m
}

// NormalizeModeName maps a v2 mode name onto its index, defaulting to osu.
func NormalizeModeName(raw string) (string, int) {
	if m, ok := modeNames[raw]; ok {
		return raw, m
	}
	return "osu", ModeOsu
}

// ClampLimit normalizes a limit parameter to [1,MaxLimit], using
// DefaultLimit when absent, non-numeric or out of range.
func ClampLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return DefaultLimit
	}
	return n
}
