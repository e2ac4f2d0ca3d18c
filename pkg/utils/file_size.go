package utils

import (
	"strings"

	"github.com/docker/go-units"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with base-1024 units and at most two
// decimals, e.g. 2048000 -> "1.95 MB", 512000 -> "500 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	formatted := units.CustomSize("%.2f %s", float64(bytes), 1024.0, fileSizeUnits)
	number, unit, found := strings.Cut(formatted, " ")
	if !found {
		return formatted
	}
	if strings.Contains(number, ".") {
		number = strings.TrimRight(number, "0")
		number = strings.TrimSuffix(number, ".")
	}
	return number + " " + unit
}

// ParseFileSize accepts human sizes such as "10MB" or "512kb" with the same
// base-1024 units FormatFileSize renders.
func ParseFileSize(size string) (int64, error) {
	return units.RAMInBytes(size)
}
