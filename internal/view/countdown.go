package view

import (
	"math"
	"math/big"
	"time"
)

type Countdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Expired bool  `json:"expired"`
}

var secondsPerDay = big.NewInt(86400)

// CountdownTo returns the time left from now until deadline, given in unix
// seconds.
func CountdownTo(now time.Time, deadline *big.Int) Countdown {
	if deadline == nil {
		return Countdown{Expired: true}
	}

	left := new(big.Int).Sub(deadline, big.NewInt(now.Unix()))
	if left.Sign() <= 0 {
		return Countdown{Expired: true}
	}

	days, rest := new(big.Int).QuoRem(left, secondsPerDay, new(big.Int))
	secs := rest.Int64()

	c := Countdown{
		Days:    math.MaxInt64,
		Hours:   secs / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
	if days.IsInt64() {
		c.Days = days.Int64()
	}
	return c
}

// Deadline formats a unix timestamp as RFC 3339 in UTC. Values outside the
// range of time.Time yield an empty string.
func Deadline(unix *big.Int) string {
	if unix == nil || !unix.IsInt64() {
		return ""
	}
	t := time.Unix(unix.Int64(), 0).UTC()
	if t.Year() > 9999 {
		return ""
	}
	return t.Format(time.RFC3339)
}
