package main

import (
	"io"
	"os"
	"path/filepath"
)

// readSource returns the wiki text to render. "-" reads all of stdin.
func readSource(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == InputSourceStdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeRendered writes the rendered page to stdout for "-", otherwise to path,
// creating its parent directories.
func writeRendered(path, page string, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := io.WriteString(stdout, page)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(page), FilePermissions)
}
