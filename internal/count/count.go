// Package count implements literal-substring line counting over files or
// a stream, the grep -c idiom.
package count

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// maxLine bounds the scanner's token buffer. Log lines can exceed the
// bufio default of 64KB.
const maxLine = 1 << 20

// Reader counts lines in r containing pattern as a literal substring.
func Reader(r io.Reader, pattern string) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	n := 0
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), pattern) {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("error scanning input: %w", err)
	}
	return n, nil
}

// File counts matching lines in a single file.
func File(path, pattern string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Reader(f, pattern)
}

// Files counts matching lines across all paths and returns the total.
// Files are read concurrently with bounded parallelism; the first error
// cancels the remaining reads.
func Files(ctx context.Context, paths []string, pattern string) (int, error) {
	var total atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			n, err := File(path, pattern)
			if err != nil {
				return err
			}
			total.Add(int64(n))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}
