// Package testutil holds table helpers shared by the gocheck suites.
package testutil

import (
	. "gopkg.in/check.v1"
)

// TestData is one row of a table driven gocheck test.
type TestData struct {
	Value       interface{}
	Checker     Checker
	Expected    interface{}
	Description string
}

// TestSlice is a table of checks run in order.
type TestSlice []TestData

// Test asserts every row, failing fast on the first mismatch.
func (s TestSlice) Test(c *C) {
	for i, test := range s {
		comment := Commentf("Test %d: %s", i, test.Description)
		// Single-parameter checkers such as IsNil take no expected value.
		if len(test.Checker.Info().Params) == 1 {
			c.Assert(test.Value, test.Checker, comment)
			continue
		}
		c.Assert(test.Value, test.Checker, test.Expected, comment)
	}
}

// ErrorCheck discards the value part of a (value, error) pair.
func ErrorCheck(_ interface{}, err error) error {
	return err
}
