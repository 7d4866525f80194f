// Copyright 2025 The q15axpy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package harness

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/mmap"
)

// Compression selects the container WriteFile wraps test vectors in.
type Compression int

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
)

var compressionNames = []string{"none", "gzip", "zstd"}

func (c Compression) String() string {
	if c >= 0 && int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// ParseCompression maps "none", "gzip" or "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	for i, n := range compressionNames {
		if strings.EqualFold(name, n) {
			return Compression(i), nil
		}
	}
	return CompressNone, fmt.Errorf("harness: unknown compression %q (want none, gzip or zstd)", name)
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// sniff reports the container of a file from its first bytes.
func sniff(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressGzip
	default:
		return CompressNone
	}
}

// ReadFile memory-maps path and parses the test vectors in it. Gzip and
// zstd containers are detected from their magic bytes.
func ReadFile(path string) ([]Case, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cases, err := ReadCases(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Open memory-maps path and returns a reader over its decompressed
// contents. The caller must Close it.
func Open(path string) (io.ReadCloser, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("harness: open test vectors: %w", err)
	}

	// An empty mapping has no backing data and rejects ReadAt.
	head := make([]byte, min(len(zstdMagic), m.Len()))
	k := 0
	if len(head) > 0 {
		if k, err = m.ReadAt(head, 0); err != nil && !errors.Is(err, io.EOF) {
			m.Close()
			return nil, fmt.Errorf("harness: read %s: %w", path, err)
		}
	}
	raw := io.NewSectionReader(m, 0, int64(m.Len()))

	switch sniff(head[:k]) {
	case CompressGzip:
		zr, err := gzip.NewReader(raw)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("harness: %s: %w", path, err)
		}
		return &mappedReader{Reader: zr, closers: []io.Closer{zr, m}}, nil
	case CompressZstd:
		zr, err := zstd.NewReader(raw)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("harness: %s: %w", path, err)
		}
		return &mappedReader{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), m}}, nil
	default:
		return &mappedReader{Reader: raw, closers: []io.Closer{m}}, nil
	}
}

type mappedReader struct {
	io.Reader
	closers []io.Closer
}

func (r *mappedReader) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// WriteFile writes cases to path, wrapped in the given container.
func WriteFile(path string, cases []Case, c Compression) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("harness: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("harness: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	var enc io.WriteCloser
	switch c {
	case CompressNone:
	case CompressGzip:
		enc = gzip.NewWriter(bw)
	case CompressZstd:
		if enc, err = zstd.NewWriter(bw); err != nil {
			return fmt.Errorf("harness: %s: %w", path, err)
		}
	default:
		return fmt.Errorf("harness: unsupported compression %v", c)
	}

	var w io.Writer = bw
	if enc != nil {
		w = enc
	}
	if err := WriteCases(w, cases); err != nil {
		return fmt.Errorf("harness: %s: %w", path, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("harness: %s: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("harness: %s: %w", path, err)
	}
	return nil
}
