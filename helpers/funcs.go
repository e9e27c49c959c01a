package helpers

import "math"

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// StdDev is the sample standard deviation around the given mean
func StdDev(numbers []float64, mean float64) float64 {
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

// PopulationStdDev divides by n, not n-1. Bollinger bands use this one.
func PopulationStdDev(numbers []float64, mean float64) float64 {
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	return math.Sqrt(total / float64(len(numbers)))
}

func MeanAbsoluteDeviation(numbers []float64, mean float64) float64 {
	total := 0.0
	for _, number := range numbers {
		total += math.Abs(number - mean)
	}
	return total / float64(len(numbers))
}

func HighestValue(numbers []float64) float64 {
	highest := math.Inf(-1)
	for _, number := range numbers {
		if number > highest {
			highest = number
		}
	}
	return highest
}

func LowestValue(numbers []float64) float64 {
	lowest := math.Inf(1)
	for _, number := range numbers {
		if number < lowest {
			lowest = number
		}
	}
	return lowest
}

func Clamp(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
