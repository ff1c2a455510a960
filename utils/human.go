package utils

import (
	"fmt"
)

// HumanBytes converts bytes to human readable string
func HumanBytes(i int64) string {
	value, unit := float64(i), ""

	for _, u := range []string{"KiB", "MiB", "GiB", "TiB"} {
		if value <= 512 {
			break
		}
		value /= 1024
		unit = u
	}

	if unit == "" {
		return fmt.Sprintf("%d B", i)
	}
	return fmt.Sprintf("%#.02f %s", value, unit)
}
