package training

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

type Running struct {
	base
}

func NewRunning(action int, duration, weight float64) *Running {
	return &Running{base{action: action, duration: duration, weight: weight, lenStep: LenStep}}
}

func (r *Running) Type() string {
	return "Running"
}

func (r *Running) Calories() float64 {
	speed := runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift
	return speed * (r.weight / MInKm * r.duration) * MinInH
}
