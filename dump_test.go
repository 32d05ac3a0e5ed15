package hackblock

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestDumpEmpty(Te *testing.T) {
	var b bytes.Buffer
	errql(Te, DumpHackblocks(&b, nil))
	if b.String() != "t_hackblock\n" {
		Te.Errorf("got %q", b.String())
	}
}

func TestDumpHackblocks(Te *testing.T) {
	var b bytes.Buffer
	p := nh3()
	p.Hacks[0].Kind = 1
	errql(Te, DumpHackblocks(&b, []Hackblock{*p, {}}))
	want := "t_hackblock\n" +
		"  0 NH3+  1\n" +
		"0: 2    -   H3    1 -    N   CA    C    -\n" +
		" b 1: [ N H3 override]\n" +
		"\n" +
		"  1    -  0\n" +
		"\n"
	if b.String() != want {
		Te.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestDumpHackPayload(Te *testing.T) {
	var b bytes.Buffer
	p := NewHackblock("COO-")
	p.AddHack(Hack{NR: 1, OldName: "O", NewName: "OC1", Atom: &Atom{Type: "O2"}, CGNr: Some(3)})
	p.RB[Angles].Add(NewAngle("CA", "C", "OC1", ""))
	errql(Te, DumpHackblocks(&b, []Hackblock{*p}))
	lines := strings.Split(b.String(), "\n")
	if lines[2] != "0: 1    O  OC1 +  0 3    -    -    -    -" {
		Te.Errorf("wrong hack line %q", lines[2])
	}
	if lines[3] != " a 1: [ CA C OC1 -]" {
		Te.Errorf("wrong angle line %q", lines[3])
	}
}

func TestDumpRestps(Te *testing.T) {
	var b bytes.Buffer
	errql(Te, DumpRestps(&b, []Restp{*ala()}))
	out := b.String()
	if !strings.HasPrefix(out, "t_restp\n  0  ALA  3\n") {
		Te.Errorf("wrong header:\n%s", out)
	}
	if !strings.Contains(out, " b 2: [ N CA -] [ CA C -]\n") {
		Te.Errorf("bonds missing:\n%s", out)
	}
}

func TestDumpFile(Te *testing.T) {
	hb := []Hackblock{*nh3()}
	var plain bytes.Buffer
	errql(Te, DumpHackblocks(&plain, hb))
	dir := Te.TempDir()
	readers := map[string]func(io.Reader) (io.Reader, error){
		"dump.txt": func(r io.Reader) (io.Reader, error) { return r, nil },
		"dump.gz":  func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) },
		"dump.zst": func(r io.Reader) (io.Reader, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	}
	for name, open := range readers {
		fname := filepath.Join(dir, name)
		errql(Te, DumpFile(fname, hb))
		f, err := os.Open(fname)
		if err != nil {
			Te.Fatal(err)
		}
		r, err := open(f)
		if err != nil {
			f.Close()
			Te.Fatal(err)
		}
		got, err := io.ReadAll(r)
		f.Close()
		errql(Te, err)
		if string(got) != plain.String() {
			Te.Errorf("%s: got %q, want %q", name, got, plain.String())
		}
	}
}
