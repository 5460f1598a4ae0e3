// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
)

// openInput returns the file at path, or fallback when path is empty or "-".
func openInput(path string, fallback io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// openOutput creates the file at path, or returns fallback when path is
// empty or "-".
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
