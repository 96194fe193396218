package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Unsupported(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.docx")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	_, err := ReadFile(p, dataset.DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.CSV"))
	assert.True(t, Supported("b.tsv"))
	assert.True(t, Supported("c.xlsx"))
	assert.False(t, Supported("d.json"))
}
