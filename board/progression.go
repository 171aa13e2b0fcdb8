package board

import (
	"fmt"
	"math"
)

// Progression is an arithmetic sequence of row or column indices from First
// towards Last (inclusive) in increments of Step. A progression whose First
// already lies past Last in the direction of Step is empty.
type Progression struct {
	First, Last, Step int
}

// Span returns the ascending progression first, first+1, …, last.
func Span(first, last int) Progression {
	return Progression{First: first, Last: last, Step: 1}
}

// DownTo returns the descending progression first, first-1, …, last.
func DownTo(first, last int) Progression {
	return Progression{First: first, Last: last, Step: -1}
}

// Empty reports whether p yields no values. A zero step counts as empty.
func (p Progression) Empty() bool {
	switch {
	case p.Step > 0:
		return p.First > p.Last
	case p.Step < 0:
		return p.First < p.Last
	default:
		return true
	}
}

// Values returns the indices of p in iteration order.
// It panics if p holds more than math.MaxInt values, e.g.
// Span(math.MinInt, math.MaxInt).
func (p Progression) Values() []int {
	if p.Empty() {
		return []int{}
	}
	q, _ := p.steps()
	if q >= math.MaxInt {
		panic(fmt.Sprintf("board: progression %v has too many values", p))
	}
	out := make([]int, int(q)+1)
	for k := range out {
		out[k] = p.First + k*p.Step
	}

	return out
}

// Min returns the smallest value of a non-empty progression.
func (p Progression) Min() int {
	if p.Step > 0 {
		return p.First
	}

	return p.lastValue()
}

// Max returns the largest value of a non-empty progression.
func (p Progression) Max() int {
	if p.Step > 0 {
		return p.lastValue()
	}

	return p.First
}

func (p Progression) String() string {
	return fmt.Sprintf("%d..%d step %d", p.First, p.Last, p.Step)
}

// steps returns the number of whole steps q between First and Last of a
// non-empty progression, and the step magnitude s. Both are unsigned so that
// extreme bounds and Step == math.MinInt do not overflow.
func (p Progression) steps() (q, s uint) {
	if p.Step > 0 {
		s = uint(p.Step)

		return (uint(p.Last) - uint(p.First)) / s, s
	}
	s = -uint(p.Step)

	return (uint(p.First) - uint(p.Last)) / s, s
}

// lastValue is the final value actually produced, which differs from Last
// when the step does not divide the span.
func (p Progression) lastValue() int {
	q, s := p.steps()
	if p.Step > 0 {
		return int(uint(p.First) + q*s)
	}

	return int(uint(p.First) - q*s)
}

// clampMax drops the values above limit, keeping the step.
func (p Progression) clampMax(limit int) Progression {
	if p.Step > 0 {
		if p.Last > limit {
			p.Last = limit
		}

		return p
	}
	if p.First > limit {
		s := -uint(p.Step)
		k := (uint(p.First) - uint(limit) + s - 1) / s
		p.First = int(uint(p.First) - k*s)
	}

	return p
}
