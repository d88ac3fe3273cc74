package output

import (
	"fmt"
	"io"
	"os"
)

// Sink routes the processed response body to its destination. A file path
// always receives the exact bytes, even in silent mode; without a path the
// body is printed to Stdout unless Silent is set, in which case it is
// discarded.
type Sink struct {
	Path   string
	Silent bool
	Stdout io.Writer
}

// Write delivers the processed body.
func (s *Sink) Write(data []byte) error {
	if s.Path != "" {
		if err := os.WriteFile(s.Path, data, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}
	if s.Silent {
		return nil
	}
	_, err := fmt.Fprintln(s.Stdout, string(data))
	return err
}
