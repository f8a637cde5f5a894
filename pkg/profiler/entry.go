package profiler

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when statistics are requested for a name that has no entries.
var ErrNoData = errors.New("vsprof: no data")

// Entry is one completed scope. Duration is in resolution units of the
// registry that accepted it.
type Entry struct {
	Name     string
	Duration int64
}

type Aggregate struct {
	Name  string
	Count int
	Max   float64
	Min   float64
	Avg   float64
}

func aggregate(name string, list []Entry) (Aggregate, error) {
	if len(list) == 0 {
		return Aggregate{}, ErrNoData
	}
	agg := Aggregate{
		Name:  name,
		Count: len(list),
		Min:   float64(list[0].Duration),
		Max:   float64(list[0].Duration),
	}
	var total float64
	for _, e := range list {
		d := float64(e.Duration)
		total += d
		if d > agg.Max {
			agg.Max = d
		}
		if d < agg.Min {
			agg.Min = d
		}
	}
	agg.Avg = total / float64(agg.Count)
	// Rounding in the division must not push the mean outside [Min, Max].
	if agg.Avg < agg.Min {
		agg.Avg = agg.Min
	} else if agg.Avg > agg.Max {
		agg.Avg = agg.Max
	}
	return agg, nil
}

// IOError reports a failed file operation while saving statistics.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("vsprof: %v %v: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
