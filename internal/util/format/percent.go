// Package format holds small display helpers shared by the CLI and TUI.
package format

import "fmt"

// Percent renders a completion fraction in [0,1] as "42.0%".
func Percent(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("%.1f%%", fraction*100)
}
