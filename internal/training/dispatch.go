package training

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

var (
	// ErrUnknownWorkout is returned by Build for a code it has no workout for.
	ErrUnknownWorkout = errors.New("unknown workout type")
	// ErrInvalidInput is returned when the package values cannot describe a workout.
	ErrInvalidInput = errors.New("invalid input")
)

const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Kind describes one workout code the dispatcher knows.
type Kind struct {
	Code   string
	Label  string
	Fields []string
}

var kinds = []Kind{
	{Code: CodeSwimming, Label: "Swimming", Fields: []string{"action", "duration", "weight", "count_pool", "length_pool"}},
	{Code: CodeRunning, Label: "Running", Fields: []string{"action", "duration", "weight"}},
	{Code: CodeWalking, Label: "SportsWalking", Fields: []string{"action", "duration", "weight", "height"}},
}

// Codes returns the known workout codes in a stable order.
func Codes() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Build creates the session for a sensor package. Values are bound
// positionally in the order listed by Codes.
func Build(code string, values []float64) (Session, error) {
	var kind *Kind
	for i := range kinds {
		if kinds[i].Code == code {
			kind = &kinds[i]
			break
		}
	}
	if kind == nil {
		log.Warn().Str("code", code).Msg("unknown workout type")
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}

	if len(values) != len(kind.Fields) {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidInput, code, len(kind.Fields), len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, kind.Fields[i])
		}
	}

	action, err := count(kind.Fields[0], values[0])
	if err != nil {
		return nil, err
	}
	duration, weight := values[1], values[2]
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidInput, duration)
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: weight must not be negative, got %v", ErrInvalidInput, weight)
	}

	switch code {
	case CodeRunning:
		return NewRunning(action, duration, weight), nil
	case CodeWalking:
		height := values[3]
		if height <= 0 {
			return nil, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, height)
		}
		return NewSportsWalking(action, duration, weight, height), nil
	case CodeSwimming:
		countPool, err := count(kind.Fields[3], values[3])
		if err != nil {
			return nil, err
		}
		lengthPool := values[4]
		if lengthPool < 0 {
			return nil, fmt.Errorf("%w: length_pool must not be negative, got %v", ErrInvalidInput, lengthPool)
		}
		return NewSwimming(action, duration, weight, countPool, lengthPool), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
}

// count converts a value that has to be a whole, non-negative number that
// fits in an int32.
func count(name string, v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer between 0 and %d, got %v", ErrInvalidInput, name, math.MaxInt32, v)
	}
	return int(v), nil
}
