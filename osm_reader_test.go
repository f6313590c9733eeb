package roadnet

import (
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="55.750" lon="37.600"/>
  <node id="2" lat="55.750" lon="37.601"/>
  <node id="3" lat="55.751" lon="37.601"/>
  <node id="4" lat="55.752" lon="37.601"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
    <tag k="name" v="Main street"/>
  </way>
  <way id="11">
    <nd ref="3"/>
    <nd ref="4"/>
    <tag k="building" v="yes"/>
  </way>
</osm>
`

func TestReadOSMFile(t *testing.T) {
	data, err := ReadOSMFile(writeFile(t, "sample.osm", sampleOSM))
	require.NoError(t, err)
	require.Len(t, data.Ways, 1)
	assert.Equal(t, osm.WayID(10), data.Ways[0].ID)
	assert.Len(t, data.Nodes, 2)
	require.Contains(t, data.Nodes, osm.NodeID(2))
	assert.InDelta(t, 37.601, data.Nodes[2].Lon, 1e-9)

	imported, err := ImportOSM(data)
	require.NoError(t, err)
	require.Len(t, imported.Roads, 1)
	assert.Equal(t, "Main street", imported.Roads[0].Name)
}

func TestReadOSMFileErrors(t *testing.T) {
	_, err := ReadOSMFile(writeFile(t, "sample.txt", sampleOSM))
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = ReadOSMFile(filepath.Join(t.TempDir(), "missing.osm"))
	assert.Error(t, err)
}
