package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/altsoph/community-loglike/pkg/binarygraph"
	"github.com/altsoph/community-loglike/pkg/community"
	"github.com/altsoph/community-loglike/pkg/graph"
)

// loadGraph loads path as a binarygraph file (.bin/.bin.gz) or, for
// anything else, a plain whitespace/tab-separated edge list — one
// "from\tto[\tweight]" per line, the format example_run.py's datasets
// use. A bare two-column line defaults to weight 1.
func loadGraph(path string) (*graph.Graph, error) {
	if strings.HasSuffix(path, ".bin") || strings.HasSuffix(path, ".bin.gz") {
		rg, err := binarygraph.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return rg.ToGraph()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	g := graph.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed edge line %q", line)
		}
		weight := 1.0
		if len(fields) >= 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("malformed edge weight %q: %w", fields[2], err)
			}
		}
		if err := g.AddEdge(fields[0], fields[1], weight); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", fields[0], fields[1], err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// loadPartition loads a "vertex\tcommunity" cluster file, the format
// example_run.py's *.clusters ground-truth files use.
func loadPartition(path string) (community.Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	partition := make(community.Partition)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed partition line %q", line)
		}
		partition[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return partition, nil
}
