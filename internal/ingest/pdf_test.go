package ingest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/common"
)

func TestLoadPDFRejectsGarbage(t *testing.T) {
	path := writeTemp(t, "statement.pdf", "not a pdf at all")
	_, err := LoadPDF(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDocumentOpen))
}

func TestLoadPDFMissingFile(t *testing.T) {
	_, err := LoadPDF(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDocumentOpen))
}
