package hackblock

import (
	"bufio"
	"compress/gzip"
	"compress/lzw"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const lzwLitwidth int = 8

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// compressor returns a function that wraps a writer with the compression
// matching the extension of name: .zst for zstd, .gz for gzip, .lzw for lzw.
// Any other extension means no compression.
func compressor(name string) func(io.Writer) (io.WriteCloser, error) {
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedDefault))
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.DefaultCompression) }
	lzwwriter := func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	plain := func(a io.Writer) (io.WriteCloser, error) { return nopCloser{a}, nil }
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = strings.ToLower(name[i+1:])
	}
	switch ext {
	case "zst", "zstd":
		return zstdwriter
	case "gz":
		return gzipwriter
	case "lzw":
		return lzwwriter
	}
	return plain
}

// DumpFile writes the DumpHackblocks output for hb to the file name,
// compressed according to the file extension (see DumpHackblocks and
// the package documentation).
func DumpFile(name string, hb []Hackblock) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return &Error{message: err.Error(), deco: []string{"os.Create", "DumpFile"}, critical: true, err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	buf := bufio.NewWriter(f)
	w, err := compressor(name)(buf)
	if err != nil {
		return &Error{message: "can't start compression: " + err.Error(), deco: []string{"DumpFile"}, critical: true, err: err}
	}
	if err = DumpHackblocks(w, hb); err != nil {
		w.Close()
		return errDecorate(err, "DumpFile")
	}
	if err = w.Close(); err != nil {
		return err
	}
	return buf.Flush()
}
