package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"product-scraper/pkg/models"
)

type recordingSink struct {
	saved [][]models.Product
	err   error
}

func (r *recordingSink) Save(batch []models.Product) error {
	r.saved = append(r.saved, batch)
	return r.err
}

func TestMultiSink_Save(t *testing.T) {
	batch := []models.Product{{Name: models.Present("Widget")}}
	first, second := &recordingSink{}, &recordingSink{}

	require.NoError(t, MultiSink{first, second}.Save(batch))
	require.Len(t, first.saved, 1)
	require.Len(t, second.saved, 1)
}

func TestMultiSink_StopsAtFirstError(t *testing.T) {
	broken := errors.New("broken")
	first, second := &recordingSink{err: broken}, &recordingSink{}

	err := MultiSink{first, second}.Save(nil)
	require.ErrorIs(t, err, broken)
	require.Empty(t, second.saved)
}

func TestMultiSink_NoFileAfterEarlierFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	db := &recordingSink{err: errors.New("connection reset")}

	err := MultiSink{db, NewCSVSink(path)}.Save([]models.Product{{Name: models.Present("Widget")}})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}
