// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// InverseLerp возвращает t, при котором Lerp(from, to, t) == v. Результат не ограничен.
func InverseLerp(from, to, v float64) float64 {
	if to == from {
		return 0
	}
	return (v - from) / (to - from)
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
