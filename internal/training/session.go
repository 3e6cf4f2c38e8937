// Package training turns raw sensor packages into workout summaries.
package training

const (
	LenStep     = 0.65 // Step length in meters.
	SwimLenStep = 1.38 // Stroke length in meters.
	MInKm       = 1000
	MinInH      = 60
)

// Session is one recorded workout. Every variant computes its own calories.
type Session interface {
	// Type is the workout label printed in reports.
	Type() string
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	Calories() float64
}

// base holds the inputs shared by every workout. It has no Calories method,
// so on its own it is not a Session.
type base struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func (b base) Duration() float64 {
	return b.duration
}

func (b base) Distance() float64 {
	return float64(b.action) * b.lenStep / MInKm
}

func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}
