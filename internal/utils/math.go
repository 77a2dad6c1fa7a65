// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Distance — евклидово расстояние между двумя точками
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// WithinBox проверяет, что точка b лежит в квадрате с центром a и полушириной half.
func WithinBox(ax, ay, bx, by, half float64) bool {
	return math.Abs(ax-bx) <= half && math.Abs(ay-by) <= half
}
