package faqsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceJSONSpanishKeys(t *testing.T) {
	path := writeFile(t, "faq.json", `{
  "faq": [
    {
      "pregunta": "¿Cuál es el horario de atención?",
      "respuesta": "Lunes a viernes 7am-3pm",
      "categoria": "horarios",
      "palabras_clave": ["horario", "atención"]
    },
    {
      "question": "Where is the school?",
      "answer": "Carrera 17F",
      "category": "ubicacion_contacto",
      "keywords": ["where"]
    }
  ]
}`)

	src := NewFileSource(path)
	require.Equal(t, "file:"+path, src.Name())

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []faq.Record{
		{Question: "¿Cuál es el horario de atención?", Answer: "Lunes a viernes 7am-3pm", Category: "horarios", Keywords: []string{"horario", "atención"}},
		{Question: "Where is the school?", Answer: "Carrera 17F", Category: "ubicacion_contacto", Keywords: []string{"where"}},
	}, records)
}

func TestFileSourceYAML(t *testing.T) {
	path := writeFile(t, "faq.yml", `
faq:
  - question: "¿Qué uniforme se usa?"
    answer: "Uniforme de diario"
    category: uniforme
    keywords: [uniforme, ropa]
  - pregunta: "¿Cuánto cuesta?"
    respuesta: "Consulte en secretaría"
    categoria: costos
`)

	records, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "uniforme", records[0].Category)
	require.Equal(t, []string{"uniforme", "ropa"}, records[0].Keywords)
	require.Equal(t, "costos", records[1].Category)
	require.Empty(t, records[1].Keywords)
}

func TestFileSourceErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = NewFileSource(writeFile(t, "bad.json", `{"faq": [`)).Load(ctx)
	require.Error(t, err)

	_, err = NewFileSource(writeFile(t, "other.json", `{"questions": []}`)).Load(ctx)
	require.ErrorIs(t, err, ErrMissingFAQ)
}

func TestFileSourceEmptyList(t *testing.T) {
	records, err := NewFileSource(writeFile(t, "empty.json", `{"faq": []}`)).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestLoadThroughFileSource(t *testing.T) {
	path := writeFile(t, "invalid.json", `{"faq": [{"pregunta": "sin respuesta", "categoria": "general"}]}`)

	set, err := faq.Load(context.Background(), NewFileSource(path))
	require.Error(t, err)
	var loadErr *faq.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, "file:"+path, loadErr.Source)
	require.True(t, set.Empty())
}

func TestStaticSourceCopies(t *testing.T) {
	records := []faq.Record{{Question: "q", Answer: "a", Category: "c"}}
	src := NewStaticSource("", records)
	records[0].Answer = "changed"

	require.Equal(t, "static", src.Name())
	got, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a", got[0].Answer)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = r.values[i].(string)
		case *[]string:
			*v = r.values[i].([]string)
		}
	}
	return nil
}

func TestScanRecord(t *testing.T) {
	rec, err := scanRecord(fakeRow{values: []any{"q", "a", "c", []string{"k1", "k2"}}})
	require.NoError(t, err)
	require.Equal(t, faq.Record{Question: "q", Answer: "a", Category: "c", Keywords: []string{"k1", "k2"}}, rec)

	_, err = scanRecord(fakeRow{err: errors.New("boom")})
	require.Error(t, err)
}

func TestPostgresSourceQuery(t *testing.T) {
	src := NewPostgresSource(nil, "")
	require.Equal(t, "postgres:faq_entries", src.Name())
	require.Contains(t, src.selectQuery(), "FROM faq_entries")
	require.Contains(t, src.selectQuery(), "ORDER BY id")
}

func TestShippedDataLoads(t *testing.T) {
	path := filepath.Join("..", "..", "..", "data", "faq.json")
	set, err := faq.Load(context.Background(), NewFileSource(path))
	require.NoError(t, err)
	require.Equal(t, 16, set.Len())
	require.Len(t, set.Categories(), 14)

	m := faq.NewMatcher(set, faq.Config{})
	match := m.FindAnswer("¿Dónde está ubicado el colegio?")
	require.Equal(t, 1.0, match.Score)
	require.Equal(t, "ubicacion_contacto", match.Category)
}
