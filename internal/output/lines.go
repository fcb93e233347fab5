// internal/output/lines.go
package output

import "io"

// WriteLines emits each line followed by a single newline, in sequence
// order. The first write error aborts the emission.
func WriteLines(w io.Writer, lines []string) error {
	for _, ln := range lines {
		if _, err := io.WriteString(w, ln); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
