// Package utils holds small conversion helpers shared by handlers and commands.
package utils

import (
	"math"
	"strconv"
)

// ConvertToInt parses s as an int, returning 0 when s is not a number.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToFloat64 parses s as a float64, returning 0 when s is not a number.
func ConvertToFloat64(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
