// Package view builds template-ready models from API responses. Everything
// here is pure: no I/O, no fiber, so the rendering contract is testable on
// its own.
package view

import "fmt"

// Money renders a price with the tenge prefix and two decimals.
func Money(v float64) string {
	return fmt.Sprintf("₸%.2f", v)
}

// MoneyPtr renders an optional price, substituting a dash when absent.
func MoneyPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return Money(*v)
}

// Text renders an optional string with the same dash placeholder.
func Text(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func TextPtr(s *string) string {
	if s == nil {
		return "-"
	}
	return Text(*s)
}
