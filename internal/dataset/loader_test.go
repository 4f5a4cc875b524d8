package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eva-analytics/internal/model"
)

const sampleHeader = "DEPARTAMENTO;MUNICIPIO;GRUPO  DE CULTIVO;CULTIVO;DESAGREGACIÓN REGIONAL Y/O SISTEMA PRODUCTIVO;AÑO;PERIODO;Área Sembrada (ha);Área Cosechada (ha);Producción (t);Rendimiento (t/ha)\n"

const sampleRows = sampleHeader +
	"TOLIMA;IBAGUÉ;CEREALES;ARROZ;RIEGO;2020;2020A;100,5;90;450,2;4,5\n" +
	"META;VILLAVICENCIO;CEREALES;MAÍZ;SECANO;2020;2020B;200;180;;3,1\n" +
	"TOLIMA;ESPINAL;FRUTALES;MANGO;;2020;2020A;50;40;100;2\n"

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eva.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadKeepsOnlyCereals(t *testing.T) {
	path := writeSample(t, sampleRows)

	ds, err := NewLoader().Load(context.Background(), path, ScopeCereals)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len(), "fruit rows must not survive the scope")
	assert.Equal(t, 3, ds.RowsRead)

	r := ds.View().At(0)
	assert.Equal(t, "TOLIMA", r.Department)
	assert.Equal(t, 100.5, r.SownHa)
	assert.Equal(t, 450.2, r.ProductionT)
	assert.Equal(t, 2020, r.Year)
}

func TestLoadRiceScope(t *testing.T) {
	path := writeSample(t, sampleRows)

	ds, err := NewLoader().Load(context.Background(), path, ScopeRice)
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "ARROZ", ds.View().At(0).Crop)
}

func TestLoadMissingCellBecomesNaN(t *testing.T) {
	path := writeSample(t, sampleRows)

	ds, err := NewLoader().Load(context.Background(), path, ScopeCereals)
	require.NoError(t, err)

	r := ds.View().At(1)
	assert.Equal(t, "META", r.Department)
	assert.True(t, model.Missing(r.ProductionT), "empty production cell should be missing")
	assert.False(t, model.Missing(r.SownHa))
}

func TestLoadRejectsUnparsableCell(t *testing.T) {
	content := sampleHeader + "TOLIMA;IBAGUÉ;CEREALES;ARROZ;RIEGO;2020;2020A;lots;90;450;4,5\n"
	path := writeSample(t, content)

	_, err := NewLoader().Load(context.Background(), path, ScopeCereals)
	require.Error(t, err)

	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Row)
	assert.Equal(t, "sown_ha", parseErr.Column)
	assert.Equal(t, "lots", parseErr.Value)
}

func TestLoadRejectsWrongLayout(t *testing.T) {
	content := "DEPARTAMENTO;MUNICIPIO;AÑO\nTOLIMA;IBAGUÉ;2020\n"
	path := writeSample(t, content)

	_, err := NewLoader().Load(context.Background(), path, ScopeCereals)
	require.Error(t, err)

	var formatErr *model.DataFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Missing, "production_t")
	assert.Contains(t, formatErr.Missing, "crop_group")
}

func TestLoadMemoizesPerSourceAndScope(t *testing.T) {
	path := writeSample(t, sampleRows)
	loader := NewLoader()

	first, err := loader.Load(context.Background(), path, ScopeCereals)
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), path, ScopeCereals)
	require.NoError(t, err)
	assert.Same(t, first, second, "same source and scope should hit the cache")

	rice, err := loader.Load(context.Background(), path, ScopeRice)
	require.NoError(t, err)
	assert.NotSame(t, first, rice, "a different scope is a different dataset")

	loader.Invalidate(path)
	third, err := loader.Load(context.Background(), path, ScopeCereals)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "invalidation should force a re-read")
}
