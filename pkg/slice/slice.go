// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, CountFunc) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// CountFunc counts the elements for which the predicate function evaluates to true.
func CountFunc[T any](input []T, predicate func(T) bool) int {
	count := 0
	for _, v := range input {
		if predicate(v) {
			count++
		}
	}
	return count
}
