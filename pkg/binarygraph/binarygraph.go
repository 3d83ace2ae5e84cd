package binarygraph

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/altsoph/community-loglike/pkg/graph"
)

// RawGraph is the exact adjacency-list representation the binary
// format carries: vertex i's neighbor list, in file order, including
// whatever symmetric duplication the original file recorded (an
// undirected edge (i,j) is typically listed once under i and once
// under j). This is kept separate from graph.Graph, which aggregates
// and dedupes, so that Load followed by Save reproduces the input
// exactly.
type RawGraph struct {
	Neighbors [][]uint32
}

// NumVertices returns N.
func (rg *RawGraph) NumVertices() int { return len(rg.Neighbors) }

// Load reads one graph from r in the legacy format: a little-endian
// uint32 vertex count N, N cumulative-degree words (the last of which
// doubles as the link-array length M, with no separate word for it),
// then M neighbor-index words.
func Load(r io.Reader) (*RawGraph, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("binarygraph: reading vertex count: %w", err)
	}

	cumDeg := make([]uint32, n)
	if n > 0 {
		if err := binary.Read(r, binary.LittleEndian, cumDeg); err != nil {
			return nil, fmt.Errorf("binarygraph: reading cumulative degrees: %w", err)
		}
	}

	var m uint32
	if n > 0 {
		m = cumDeg[n-1]
	}

	links := make([]uint32, m)
	if m > 0 {
		if err := binary.Read(r, binary.LittleEndian, links); err != nil {
			return nil, fmt.Errorf("binarygraph: reading links: %w", err)
		}
	}

	rg := &RawGraph{Neighbors: make([][]uint32, n)}
	var prev uint32
	for i := uint32(0); i < n; i++ {
		last := cumDeg[i]
		if last < prev || last > m {
			return nil, fmt.Errorf("binarygraph: cumulative degree %d at vertex %d out of range [%d,%d]", last, i, prev, m)
		}
		rg.Neighbors[i] = append([]uint32(nil), links[prev:last]...)
		prev = last
	}

	return rg, nil
}

// Save writes rg back out in the same cumulative-degree layout Load
// expects. Loading the result of Save reproduces rg exactly, and
// since cumDeg's last entry is always the total link count, Save
// never writes M as a separate word either — matching Load's
// convention of folding it into the cumulative-degree array.
func (rg *RawGraph) Save(w io.Writer) error {
	n := uint32(len(rg.Neighbors))
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return fmt.Errorf("binarygraph: writing vertex count: %w", err)
	}

	cumDeg := make([]uint32, n)
	var running uint32
	for i, neighbors := range rg.Neighbors {
		running += uint32(len(neighbors))
		cumDeg[i] = running
	}
	if n > 0 {
		if err := binary.Write(w, binary.LittleEndian, cumDeg); err != nil {
			return fmt.Errorf("binarygraph: writing cumulative degrees: %w", err)
		}
	}

	for _, neighbors := range rg.Neighbors {
		if len(neighbors) == 0 {
			continue
		}
		if err := binary.Write(w, binary.LittleEndian, neighbors); err != nil {
			return fmt.Errorf("binarygraph: writing links: %w", err)
		}
	}

	return nil
}

// ToGraph converts rg into a weighted graph.Graph suitable for
// community detection: vertex i is labeled strconv.Itoa(i), and every
// distinct unordered neighbor pair is added once at weight 1. The
// format is unweighted and its per-vertex lists are symmetric, so a
// pair recorded from both endpoints must not be added twice.
func (rg *RawGraph) ToGraph() (*graph.Graph, error) {
	g := graph.New()
	for i := range rg.Neighbors {
		g.AddVertex(strconv.Itoa(i))
	}

	seen := make(map[[2]uint32]bool)
	for i, neighbors := range rg.Neighbors {
		u := uint32(i)
		for _, v := range neighbors {
			key := [2]uint32{u, v}
			if u > v {
				key = [2]uint32{v, u}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(int(v)), 1); err != nil {
				return nil, fmt.Errorf("binarygraph: %w", err)
			}
		}
	}
	return g, nil
}

// LoadFile reads a RawGraph from path, transparently gzip-decompressing
// when path ends in ".gz".
func LoadFile(path string) (*RawGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binarygraph: opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("binarygraph: gzip header in %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	rg, err := Load(r)
	if err != nil {
		return nil, err
	}
	slog.Info("binarygraph: loaded", "path", path, "vertices", rg.NumVertices())
	return rg, nil
}

// SaveFile writes rg to path, gzip-compressing when path ends in ".gz".
func SaveFile(rg *RawGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("binarygraph: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(w)
		if err := rg.Save(gz); err != nil {
			return err
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("binarygraph: closing gzip writer for %s: %w", path, err)
		}
	} else if err := rg.Save(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	slog.Info("binarygraph: saved", "path", path, "vertices", rg.NumVertices())
	return nil
}
