package checkout

import (
	"fmt"
	"strconv"
)

type Counter int

const (
	Counter1 Counter = iota + 1
	Counter2
	Counter3
)

// Counters lists the counters in the order they are searched and served.
var Counters = [...]Counter{Counter1, Counter2, Counter3}

func (c Counter) Valid() bool {
	return c >= Counter1 && c <= Counter3
}

func (c Counter) String() string {
	return "counter " + c.Label()
}

// Label is the bare counter number, used for metric labels and receipts.
func (c Counter) Label() string {
	return strconv.Itoa(int(c))
}

func (c Counter) index() int {
	return int(c) - 1
}

// Thresholds are the maximum basket sizes per counter. Bounds are inclusive.
// Counter 3 is the overflow line: it takes every basket above Counter2, so
// Counter3 is only validated and reported.
type Thresholds struct {
	Counter1 int
	Counter2 int
	Counter3 int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Counter1: 5,
		Counter2: 5,
		Counter3: 5,
	}
}

func (t Thresholds) Validate() error {
	for i, limit := range []int{t.Counter1, t.Counter2, t.Counter3} {
		if limit < 0 {
			return fmt.Errorf("counter %d threshold must not be negative: %d", i+1, limit)
		}
	}
	return nil
}

func (t Thresholds) Route(itemCount int) Counter {
	switch {
	case itemCount <= t.Counter1:
		return Counter1
	case itemCount <= t.Counter2:
		return Counter2
	default:
		return Counter3
	}
}
