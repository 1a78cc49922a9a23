package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	formatRaw  = "raw"
	formatText = "text"
)

var errOddLength = errors.New("raw input length is not a multiple of 4 bytes")

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openInput opens name ("-" for stdin) and unwraps .zst, .gz and .lz4
// compression by extension.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	var (
		r     io.Reader
		closeFn = func() error { return nil }
	)
	if name == "-" {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		r = f
		closeFn = f.Close
	}

	mc := &multiCloser{Reader: r, closers: []func() error{closeFn}}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			_ = mc.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		mc.Reader = dec
		mc.closers = append(mc.closers, func() error { dec.Close(); return nil })
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = mc.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		mc.Reader = gz
		mc.closers = append(mc.closers, gz.Close)
	case ".lz4":
		mc.Reader = lz4.NewReader(r)
	}

	return mc, nil
}

// decodeSamples reads every sample from r.
//
// raw is a packed little-endian float32 stream; text is whitespace separated
// numbers, where nan, inf and -inf are accepted.
func decodeSamples(r io.Reader, format string) ([]float32, error) {
	switch format {
	case formatRaw:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if len(data)%4 != 0 {
			return nil, errOddLength
		}
		out := make([]float32, len(data)/4)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		}
		return out, nil

	case formatText:
		var out []float32
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			v, err := strconv.ParseFloat(sc.Text(), 32)
			if err != nil {
				return nil, fmt.Errorf("sample %d: %w", len(out), err)
			}
			out = append(out, float32(v))
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", format, formatRaw, formatText)
	}
}

// readSamples opens, decompresses and decodes one input.
func readSamples(name, format string, stdin io.Reader) ([]float32, error) {
	rc, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	samples, err := decodeSamples(rc, format)
	if cerr := rc.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return samples, err
}
