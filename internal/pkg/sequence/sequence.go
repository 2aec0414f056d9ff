// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

// Package sequence runs the factorial entry sequence and prints its results.
package sequence

import (
	"fmt"
	"io"

	"github.com/elastic/elastic-factorial/pkg/core/logger"
	"github.com/elastic/elastic-factorial/pkg/factorial"
)

// Run computes the factorial of every input, in order, and writes one result
// line per input to out.
func Run(log *logger.Logger, out io.Writer, inputs []int) error {
	for _, n := range inputs {
		result := factorial.Factorial(n)
		log.Debugw("computed factorial", "input", n, "result", result)

		if _, err := fmt.Fprintln(out, factorial.Format(n, result)); err != nil {
			return fmt.Errorf("writing result for input %d: %w", n, err)
		}
	}
	return nil
}
