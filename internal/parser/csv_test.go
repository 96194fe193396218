package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/KaramelBytes/missflux/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileCSV_Frame(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "hop_harvest.csv")
	content := "date,plot,alpha_acids,moisture\n" +
		"2024-08-10,A1,12.5%,74\n" +
		"2024-08-12,,11.8%,\n" +
		"2024-08-15,B3,NA,68\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	f, err := parser.ReadFile(p, dataset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "hop_harvest.csv", f.Name)
	assert.Equal(t, []string{"date", "plot", "alpha_acids", "moisture"}, f.Columns)
	assert.Equal(t, []int{0, 1, 1, 1}, f.MissingCounts())
}
