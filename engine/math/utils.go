package math

import "golang.org/x/exp/constraints"

/**
 * @brief Clamps value to the inclusive range [lower, upper].
 *
 * @param value The value to be clamped.
 * @param lower The lower bound of the range.
 * @param upper The upper bound of the range.
 * @return The clamped value.
 */
func Clamp[T constraints.Ordered](value, lower, upper T) T {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
