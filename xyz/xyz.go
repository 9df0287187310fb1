// Package xyz reads and writes molecular structures in the plain XYZ
// file format: an atom count line, a free-text comment line, then one
// "symbol x y z" line per atom. Files ending in .gz are read and
// written through gzip transparently.
//
// Element columns may hold either a symbol ("Cu") or a bare atomic
// number ("29"); the writer always emits symbols when one is known.
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/mol"
	"github.com/torvik/superpose/periodic"
)

var (
	// ErrBadHeader indicates the atom-count line is missing or not a
	// non-negative integer.
	ErrBadHeader = errors.New("xyz: malformed atom count line")

	// ErrBadAtomLine indicates an atom line does not hold an element
	// followed by three coordinates.
	ErrBadAtomLine = errors.New("xyz: malformed atom line")

	// ErrUnknownElement indicates an element column that is neither a
	// known symbol nor an integer atomic number.
	ErrUnknownElement = errors.New("xyz: unknown element")

	// ErrTruncated indicates the file ended before the declared number
	// of atoms was read.
	ErrTruncated = errors.New("xyz: fewer atom lines than declared")
)

// Read parses one XYZ structure from r. Content beyond the declared
// atom count is ignored, so concatenated trajectories read their first
// frame.
func Read(r io.Reader) (mol.Structure, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return mol.Structure{}, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return mol.Structure{}, fmt.Errorf("%w: %q", ErrBadHeader, strings.TrimSpace(sc.Text()))
	}

	// Comment line. Optional only when zero atoms follow.
	if !sc.Scan() && n > 0 {
		return mol.Structure{}, ErrTruncated
	}

	labels := make([]int, 0, n)
	coords := make(geom.Coords, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return mol.Structure{}, fmt.Errorf("%w: got %d of %d", ErrTruncated, i, n)
		}
		z, v, err := parseAtomLine(sc.Text())
		if err != nil {
			return mol.Structure{}, fmt.Errorf("%w (atom %d)", err, i+1)
		}
		labels = append(labels, z)
		coords = append(coords, v)
	}
	if err := sc.Err(); err != nil {
		return mol.Structure{}, err
	}
	return mol.New(labels, coords)
}

func parseAtomLine(line string) (int, geom.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, geom.Vec3{}, fmt.Errorf("%w: %q", ErrBadAtomLine, line)
	}

	z, err := parseElement(fields[0])
	if err != nil {
		return 0, geom.Vec3{}, err
	}

	var v geom.Vec3
	for k := 0; k < 3; k++ {
		if v[k], err = strconv.ParseFloat(fields[k+1], 64); err != nil {
			return 0, geom.Vec3{}, fmt.Errorf("%w: %q", ErrBadAtomLine, line)
		}
	}
	return z, v, nil
}

// parseElement accepts an element symbol or a bare atomic number.
func parseElement(s string) (int, error) {
	if z, ok := periodic.Number(s); ok {
		return z, nil
	}
	if z, err := strconv.Atoi(s); err == nil && z > 0 {
		return z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

// Write emits s to w in XYZ layout with the given comment line.
func Write(w io.Writer, s mol.Structure, comment string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", s.Len(), comment)
	for i, z := range s.Labels {
		c := s.Coords[i]
		fmt.Fprintf(bw, "%-2s %15.8f %15.8f %15.8f\n", elementString(z), c[0], c[1], c[2])
	}
	return bw.Flush()
}

// elementString prefers the symbol and falls back to the bare number
// for labels outside the periodic table.
func elementString(z int) string {
	if sym, ok := periodic.Symbol(z); ok {
		return sym
	}
	return strconv.Itoa(z)
}

// ReadFile reads one structure from path, decompressing when the name
// ends in .gz.
func ReadFile(path string) (mol.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return mol.Structure{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return mol.Structure{}, fmt.Errorf("xyz: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	s, err := Read(r)
	if err != nil {
		return mol.Structure{}, fmt.Errorf("xyz: %s: %w", path, err)
	}
	return s, nil
}

// WriteFile writes s to path, compressing when the name ends in .gz.
func WriteFile(path string, s mol.Structure, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := Write(w, s, comment); err != nil {
		f.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
