package model

import "time"

// bounds of pit stop durations considered plausible for display
const (
	PitStopDisplayMin = 18 * time.Second
	PitStopDisplayMax = 40 * time.Second
)

type PitStop struct {
	RaceID       int `json:"raceId"`
	DriverID     int `json:"driverId"`
	Stop         int `json:"stop"`
	Lap          int `json:"lap"`
	Milliseconds int `json:"milliseconds"`
}

func (p *PitStop) Duration() time.Duration {
	return time.Duration(p.Milliseconds) * time.Millisecond
}

// InDisplayBand reports whether the stop is physically valid and its duration
// lies within [PitStopDisplayMin, PitStopDisplayMax].
// Stops outside the band stay in the store, they are just not displayed.
func (p *PitStop) InDisplayBand() bool {
	if p.Milliseconds <= 0 || p.Lap <= 0 {
		return false
	}
	d := p.Duration()
	return d >= PitStopDisplayMin && d <= PitStopDisplayMax
}

type LapTime struct {
	RaceID       int `json:"raceId"`
	DriverID     int `json:"driverId"`
	Lap          int `json:"lap"`
	Position     int `json:"position"`
	Milliseconds int `json:"milliseconds"`
}
