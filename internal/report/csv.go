package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteValues writes one decimal integer per line, with no header.
func WriteValues(w io.Writer, values []uint64) error {
	bw := bufio.NewWriter(w)
	var num [20]byte
	for _, v := range values {
		line := strconv.AppendUint(num[:0], v, 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSV creates (or truncates) path and writes values to it.
func WriteCSV(path string, values []uint64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()
	if err := WriteValues(f, values); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
