package util

type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds up values.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// CalculateAverage returns the arithmetic mean of values, or 0 when empty.
func CalculateAverage[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Ratio divides num by den, returning 0 for a zero denominator.
func Ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
