package output

import (
	"fmt"

	w3rhttp "github.com/w3rdev/w3r/internal/http"
)

const bytesPerKB = 1024.0

// PrintTiming writes the timing report: the three measurement windows, the
// response size, and the throughput. Throughput is omitted when the body is
// empty or the total time is zero.
func (f *Formatter) PrintTiming(timing w3rhttp.Timing, size int) {
	fmt.Fprintln(f.out, f.scheme.Section.Sprint("--- Timing Information ---"))
	fmt.Fprintf(f.out, "Response received: %v\n", timing.Response)
	fmt.Fprintf(f.out, "Body read time: %v\n", timing.BodyRead)
	fmt.Fprintf(f.out, "Total time: %v\n", timing.Total)
	fmt.Fprintf(f.out, "Response size: %d bytes (%.2f KB)\n", size, float64(size)/bytesPerKB)

	if size > 0 && timing.Total > 0 {
		throughput := float64(size) / timing.Total.Seconds() / bytesPerKB
		fmt.Fprintf(f.out, "Throughput: %.2f KB/s\n", throughput)
	}
	fmt.Fprintln(f.out)
}
