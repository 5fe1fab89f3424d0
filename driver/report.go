package driver

import (
	"fmt"
	"io"
	"strings"
)

// PrintReport writes a fixed-width columnar summary of records to w.
func PrintReport(w io.Writer, records []Record) {
	fmt.Fprintf(w, "%-28s | %-10s | %-12s | %-10s\n", "Configuration", "Size", "Max Error", "Worst Bone")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, r := range records {
		fmt.Fprintf(w, "%-28s | %-10s | %-12.6f | %-10d\n",
			r.Combination.String(), formatBytes(r.SizeBytes), r.MaxError, r.WorstBone)
	}
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
