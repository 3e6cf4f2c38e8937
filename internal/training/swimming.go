package training

const (
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

type Swimming struct {
	base
	countPool  int
	lengthPool float64 // in meters
}

func NewSwimming(action int, duration, weight float64, countPool int, lengthPool float64) *Swimming {
	return &Swimming{
		base:       base{action: action, duration: duration, weight: weight, lenStep: SwimLenStep},
		countPool:  countPool,
		lengthPool: lengthPool,
	}
}

func (s *Swimming) Type() string {
	return "Swimming"
}

func (s *Swimming) CountPool() int {
	return s.countPool
}

func (s *Swimming) LengthPool() float64 {
	return s.lengthPool
}

// MeanSpeed is based on the pool laps, not on the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

func (s *Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.weight
}
