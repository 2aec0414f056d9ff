// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

// Package factorial computes factorials of non-negative integers.
package factorial

import "fmt"

// Factorial returns n! computed recursively.
//
// n must not be negative; a negative n recurses until the stack is exhausted.
// Results that do not fit in an int wrap silently.
func Factorial(n int) int {
	if n == 0 {
		return 1
	}
	return n * Factorial(n-1)
}

// Format renders a single result line.
func Format(n, result int) string {
	return fmt.Sprintf("Input: %d -> Output: Factorial = %d", n, result)
}
