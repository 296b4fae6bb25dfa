package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBuild(t *testing.T) {
	r := New()
	r.ObserveBuild("template", 12)
	r.ObserveBuild("template", 3)
	r.ObserveBuild("live", 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.mapsBuilt.WithLabelValues("template")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.mapsBuilt.WithLabelValues("live")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.cellsPlaced))
}

func TestObserveRenderAndUnplaced(t *testing.T) {
	r := New()
	r.ObserveRender("admin", true, 3*time.Millisecond)
	r.ObserveRender("player", false, time.Millisecond)
	r.ObserveUnplaced(4)
	r.ObserveUnplaced(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("admin", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("player", "false")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.unplaced))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.ObserveBuild("template", 1)
	r.ObserveRender("admin", false, time.Second)
	r.ObserveUnplaced(1)
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "never.prom")))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.ObserveBuild("template", 5)

	path := filepath.Join(t.TempDir(), "cartograph.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `cartograph_maps_built_total{keyspace="template"} 1`), text)
	assert.True(t, strings.Contains(text, "cartograph_cells_placed_count 1"), text)
}
