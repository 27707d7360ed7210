package ratings

import "math"

// Aggregate is the (mean, count) summary of every star value a post has
// received.
type Aggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarize computes the arithmetic mean of the values rounded to one
// decimal place, half away from zero. An empty sequence yields {0, 0}.
func Summarize(values []int) Aggregate {
	if len(values) == 0 {
		return Aggregate{}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	mean := float64(sum) / float64(len(values))
	return Aggregate{
		Average: math.Round(mean*10) / 10,
		Count:   len(values),
	}
}
