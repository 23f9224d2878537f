package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"
)

// HumanInteger returns the number in a human readable format
func HumanInteger[N constraints.Integer](input N) string {
	if input < 0 {
		return "-" + HumanInteger(-input)
	}
	num := uint64(input)
	switch {
	case num >= 1000000000:
		return fmt.Sprintf("%v B", num/1000000000)
	case num >= 1000000:
		return fmt.Sprintf("%v M", num/1000000)
	case num >= 1000:
		return fmt.Sprintf("%v K", num/1000)
	}
	return fmt.Sprintf("%v", num)
}

// HumanTime formats a timestamp relative to now ("3 hours ago"). The zero time and
// the unix epoch (servers send 0 for "never") are printed as fallback.
func HumanTime(t time.Time, fallback string) string {
	if t.IsZero() || t.Unix() == 0 {
		return fallback
	}
	return humanize.Time(t)
}

// MinecraftTime converts world ticks into the time of day ("06:00").
// Tick 0 is sunrise at 06:00, one day has 24000 ticks.
func MinecraftTime(ticks int64) string {
	dayTicks := ((ticks % 24000) + 24000) % 24000
	minutes := ((dayTicks*60)/1000 + 6*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
