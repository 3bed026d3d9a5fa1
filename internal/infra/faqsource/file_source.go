package faqsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// ErrMissingFAQ is returned when a document has no top level "faq" list.
var ErrMissingFAQ = errors.New(`document has no "faq" list`)

// FileSource reads records from a JSON or YAML document shaped as
// {"faq": [...]}. Files ending in .yaml or .yml are parsed as YAML.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements faq.Source.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Load implements faq.Source.
func (s *FileSource) Load(ctx context.Context) ([]faq.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read faq file: %w", err)
	}
	var doc document
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse faq file: %w", err)
	}
	if doc.FAQ == nil {
		return nil, ErrMissingFAQ
	}
	records := make([]faq.Record, 0, len(*doc.FAQ))
	for _, raw := range *doc.FAQ {
		records = append(records, raw.record())
	}
	return records, nil
}

type document struct {
	FAQ *[]rawRecord `json:"faq" yaml:"faq"`
}

// rawRecord accepts both the English keys and the Spanish keys used by the
// school's existing data files.
type rawRecord struct {
	Question      string   `json:"question" yaml:"question"`
	Answer        string   `json:"answer" yaml:"answer"`
	Category      string   `json:"category" yaml:"category"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
	Pregunta      string   `json:"pregunta" yaml:"pregunta"`
	Respuesta     string   `json:"respuesta" yaml:"respuesta"`
	Categoria     string   `json:"categoria" yaml:"categoria"`
	PalabrasClave []string `json:"palabras_clave" yaml:"palabras_clave"`
}

func (r rawRecord) record() faq.Record {
	rec := faq.Record{
		Question: firstNonEmpty(r.Question, r.Pregunta),
		Answer:   firstNonEmpty(r.Answer, r.Respuesta),
		Category: firstNonEmpty(r.Category, r.Categoria),
		Keywords: r.Keywords,
	}
	if len(rec.Keywords) == 0 {
		rec.Keywords = r.PalabrasClave
	}
	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ faq.Source = (*FileSource)(nil)
