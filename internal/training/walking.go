package training

import "math"

const (
	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
)

type SportsWalking struct {
	base
	height float64 // in cm
}

func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		base:   base{action: action, duration: duration, weight: weight, lenStep: LenStep},
		height: height,
	}
}

func (w *SportsWalking) Type() string {
	return "SportsWalking"
}

func (w *SportsWalking) Height() float64 {
	return w.height
}

// Calories floors speed²/height and uses the height in centimeters as is.
// Only the speed term scales with the duration.
func (w *SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	weightTerm := walkCaloriesWeightMultiplier * w.weight
	speedTerm := math.Floor(speed*speed/w.height) * walkCaloriesSpeedMultiplier * w.weight
	return weightTerm + speedTerm*w.duration*MinInH
}
