package training

import "fmt"

// Report is the computed summary of a session.
type Report struct {
	Type     string  `toml:"training_type"`
	Duration float64 `toml:"duration"` // in hours
	Distance float64 `toml:"distance"` // in km
	Speed    float64 `toml:"speed"`    // in km/h
	Calories float64 `toml:"calories"`
}

// Info computes the report of a session.
func Info(s Session) Report {
	return Report{
		Type:     s.Type(),
		Duration: s.Duration(),
		Distance: s.Distance(),
		Speed:    s.MeanSpeed(),
		Calories: s.Calories(),
	}
}

func (r Report) Message() string {
	return fmt.Sprintf("Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories: %.3f.",
		r.Type, r.Duration, r.Distance, r.Speed, r.Calories)
}
