package main

import (
	"fmt"
	"io"
	"os"
)

// writeGIF creates path and streams the encoded animation into it
func writeGIF(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
