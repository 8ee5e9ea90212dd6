// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// FileWriter writes to a temp file and later atomically renames it.
// If a write error occurs, it is saved internally and future writes become no-ops.
type FileWriter struct {
	p    string   // target filename
	f    *os.File // temp file
	werr error    // first error encountered while writing
}

// NewFileWriter returns a new FileWriter that will write to the supplied path,
// creating its directory when missing.
func NewFileWriter(p string) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0755); nil != err {
		return nil, err
	}

	f, err := ioutil.TempFile(filepath.Dir(p), filepath.Base(p)+".*")
	if err != nil {
		return nil, err
	}
	return &FileWriter{p, f, nil}, nil
}

// Write implements io.Writer.
func (fw *FileWriter) Write(b []byte) (int, error) {
	if fw.werr != nil {
		return 0, fw.werr
	}
	var n int
	n, fw.werr = fw.f.Write(b)
	return n, fw.werr
}

// Close renames the temp file to the path originally supplied to NewFileWriter.
// If a write error occurred earlier, it is returned and no other action is taken.
func (fw *FileWriter) Close() error {
	defer os.Remove(fw.f.Name()) // no-op on success
	cerr := fw.f.Close()
	if fw.werr != nil {
		return fw.werr
	}
	if cerr != nil {
		return cerr
	}
	return os.Rename(fw.f.Name(), fw.p)
}

// WriteFile atomically replaces p with data.
func WriteFile(p string, data []byte) error {
	fw, err := NewFileWriter(p)
	if err != nil {
		return err
	}
	_, _ = fw.Write(data)
	return fw.Close()
}

// Discard removes the temp file, leaving the target untouched.
func (fw *FileWriter) Discard() {
	fw.f.Close()
	os.Remove(fw.f.Name())
}
