// core/countio/countio.go
package countio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNoInteger reports input whose first token is missing or not an integer.
var ErrNoInteger = errors.New("no integer token")

// From parses the first whitespace-delimited integer token from r.
// Anything after that token is ignored.
func From(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, ErrNoInteger
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoInteger, sc.Text())
	}
	return n, nil
}

// Read opens path and parses its leading integer token. The file handle is
// released on every path, including parse failure.
func Read(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = fh.Close() }()

	n, err := From(fh)
	if err != nil {
		return 0, fmt.Errorf("read count from %s: %w", path, err)
	}
	return n, nil
}
