package utils

import "fmt"

// FormatMB renders a byte count as mebibytes with two decimals, the way
// the status command reports storage totals.
func FormatMB(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1048576.0)
}

// Pluralize returns the singular or plural form of a word for a count.
// It only handles regular plurals that append "s".
func Pluralize(count int, singular string) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}
