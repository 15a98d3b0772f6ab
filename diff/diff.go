// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff renders a unified diff between two byte slices using
// the system diff tool. It is display-only: the rewrite pipeline
// never consults it for anything but output.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// Diff returns the unified diff between old and new, with the header
// rewritten to name them oldName and newName. It returns nil output
// and nil error when the inputs are identical.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	f1, err := writeTempFile(old)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f1)

	f2, err := writeTempFile(new)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f2)

	data, err := exec.Command("diff", "-u", f1, f2).CombinedOutput()
	if err != nil && len(data) == 0 {
		// diff exits non-zero when the files differ; only a
		// silent failure is a real error.
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Replace the temp-file header lines with the caller's names.
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data, nil
	}
	j := bytes.IndexByte(data[i+1:], '\n')
	if j < 0 {
		return data, nil
	}
	start := i + 1 + j + 1
	if start >= len(data) || data[start] != '@' {
		return data, nil
	}
	header := fmt.Sprintf("diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	return append([]byte(header), data[start:]...), nil
}

func writeTempFile(data []byte) (string, error) {
	file, err := os.CreateTemp("", "gofix-diff")
	if err != nil {
		return "", err
	}
	_, err = file.Write(data)
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}
