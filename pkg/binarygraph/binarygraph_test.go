package binarygraph

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUint32(buf *bytes.Buffer, w uint32) error {
	return binary.Write(buf, binary.LittleEndian, w)
}

// triangleRaw is a 3-vertex triangle (0-1, 1-2, 2-0) stored the way the
// legacy format records an undirected graph: each edge listed under
// both endpoints.
func triangleRaw() *RawGraph {
	return &RawGraph{
		Neighbors: [][]uint32{
			{1, 2},
			{0, 2},
			{1, 0},
		},
	}
}

func TestSaveThenLoadRoundTripsBytes(t *testing.T) {
	rg := triangleRaw()

	var buf bytes.Buffer
	require.NoError(t, rg.Save(&buf))
	original := append([]byte(nil), buf.Bytes()...)

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, rg.Neighbors, loaded.Neighbors)

	var again bytes.Buffer
	require.NoError(t, loaded.Save(&again))
	assert.Equal(t, original, again.Bytes())
}

func TestLoadCumulativeDegreeLayout(t *testing.T) {
	// N=3, cumdeg=[2,4,6] (M folded into cumdeg[2]=6), 6 links.
	var buf bytes.Buffer
	writeWords(t, &buf, 3, 2, 4, 6, 1, 2, 0, 2, 1, 0)

	rg, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, rg.Neighbors, 3)
	assert.Equal(t, []uint32{1, 2}, rg.Neighbors[0])
	assert.Equal(t, []uint32{0, 2}, rg.Neighbors[1])
	assert.Equal(t, []uint32{1, 0}, rg.Neighbors[2])
}

func writeWords(t *testing.T, buf *bytes.Buffer, words ...uint32) {
	t.Helper()
	for _, w := range words {
		require.NoError(t, writeUint32(buf, w))
	}
}

func TestToGraphDedupesSymmetricEdges(t *testing.T) {
	rg := triangleRaw()
	g, err := rg.ToGraph()
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 3.0, g.TotalWeight())
	assert.Equal(t, 1.0, g.Neighbors("0")["1"])
	assert.Equal(t, 1.0, g.Neighbors("0")["2"])
}

func TestLoadEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeUint32(&buf, 0))

	rg, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rg.NumVertices())
}

func TestLoadRejectsOutOfRangeCumulativeDegree(t *testing.T) {
	var buf bytes.Buffer
	// N=2, cumdeg=[5,1] is non-monotonic (5 > 1 at the next vertex);
	// M=1, so one link word follows and Load reaches the range check.
	writeWords(t, &buf, 2, 5, 1, 0)

	_, err := Load(&buf)
	assert.Error(t, err)
}

func TestSaveFileLoadFileRoundTripsThroughGzipExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.bin.gz")

	rg := triangleRaw()
	require.NoError(t, SaveFile(rg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rg.Neighbors, loaded.Neighbors)
}

func TestSaveFileLoadFilePlainRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.bin")

	rg := triangleRaw()
	require.NoError(t, SaveFile(rg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rg.Neighbors, loaded.Neighbors)
}
