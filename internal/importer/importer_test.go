package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
)

type stubWineRepo struct {
	repository.WineRepository
	created  []*entity.Wine
	failName string
}

func (s *stubWineRepo) Create(_ context.Context, w *entity.Wine) (*entity.Wine, error) {
	if w.Name == s.failName {
		return nil, errors.New("boom")
	}
	s.created = append(s.created, w)
	return w, nil
}

const validBackup = `{
	"version": 1,
	"wines": [
		{"name": "Barolo Riserva", "producer": "Marchesi di Barolo", "wine_type": "RED", "vintage": 2018, "quantity": 2},
		{"name": "Sancerre", "producer": "Henri Bourgeois", "wine_type": "WHITE"}
	]
}`

func TestImport(t *testing.T) {
	repo := &stubWineRepo{}
	imp := NewImporter(repo, nil)

	stats, err := imp.Import(context.Background(), []byte(validBackup))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 0, stats.Failed)
	require.Len(t, repo.created, 2)
	assert.Equal(t, 2, repo.created[0].Quantity)
	// Missing quantity defaults to a single bottle.
	assert.Equal(t, 1, repo.created[1].Quantity)
}

func TestImport_RowFailureContinues(t *testing.T) {
	repo := &stubWineRepo{failName: "Barolo Riserva"}
	imp := NewImporter(repo, nil)

	stats, err := imp.Import(context.Background(), []byte(validBackup))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Failed)
}

func TestImport_SchemaRejectsBadPayloads(t *testing.T) {
	repo := &stubWineRepo{}
	imp := NewImporter(repo, nil)

	cases := map[string]string{
		"missing wines":     `{"version": 1}`,
		"missing name":      `{"wines": [{"producer": "X", "wine_type": "RED"}]}`,
		"empty name":        `{"wines": [{"name": "", "producer": "X", "wine_type": "RED"}]}`,
		"unknown wine type": `{"wines": [{"name": "A wine", "producer": "X", "wine_type": "BLUE"}]}`,
		"pre-1900 vintage":  `{"wines": [{"name": "A wine", "producer": "X", "wine_type": "RED", "vintage": 1066}]}`,
		"not json":          `{{{`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := imp.Import(context.Background(), []byte(payload))
			require.Error(t, err)
			assert.Empty(t, repo.created)
		})
	}
}

func TestImport_UnknownKeysTolerated(t *testing.T) {
	repo := &stubWineRepo{}
	imp := NewImporter(repo, nil)

	payload := `{"wines": [{"name": "A wine", "producer": "X", "wine_type": "RED", "cellar_row": 7}]}`
	stats, err := imp.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
}
