package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SweepPoint is the fault count of one policy at one capacity.
type SweepPoint struct {
	Capacity int
	Faults   int
}

// Anomaly marks a capacity increase that raised the fault count (Belady's anomaly).
type Anomaly struct {
	From, To SweepPoint
}

// Sweep runs policy over refs for every capacity in [minCapacity, maxCapacity].
func Sweep(policy Policy, refs []Page, minCapacity, maxCapacity int) ([]SweepPoint, error) {
	if err := validateCapacity(minCapacity); err != nil {
		return nil, err
	}
	if maxCapacity < minCapacity {
		return nil, fmt.Errorf("%w: max %d below min %d", ErrInvalidCapacity, maxCapacity, minCapacity)
	}

	points := make([]SweepPoint, 0, maxCapacity-minCapacity+1)
	for c := minCapacity; c <= maxCapacity; c++ {
		res, err := Simulate(policy, refs, c)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("sweep %s: capacity=%d faults=%d", policy.DisplayName(), c, res.Faults)
		points = append(points, SweepPoint{Capacity: c, Faults: res.Faults})
	}
	return points, nil
}

// FindAnomalies returns each adjacent pair of points whose fault count rose
// as capacity grew. Points must be in ascending capacity order, as Sweep returns them.
func FindAnomalies(points []SweepPoint) []Anomaly {
	var out []Anomaly
	for i := 1; i < len(points); i++ {
		if points[i].Faults > points[i-1].Faults {
			out = append(out, Anomaly{From: points[i-1], To: points[i]})
		}
	}
	return out
}
