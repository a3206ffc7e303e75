// Package translate holds the bilingual term table used to match base-language
// hooks against articles written in other languages.
package translate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/julienpequegnot/tagdesk/internal/lang"
)

var ErrNoHeader = errors.New("translation table has no header row")

// Table maps a base-language term to its translation per language code.
// It is read-only once loaded and safe for concurrent lookups.
type Table struct {
	entries map[string]map[string]string
}

func NewTable() *Table {
	return &Table{entries: make(map[string]map[string]string)}
}

// Add registers a translation. Empty translations are ignored.
func (t *Table) Add(term, code, translation string) {
	term = strings.ToLower(strings.TrimSpace(term))
	translation = strings.TrimSpace(translation)
	code = lang.Normalize(code)
	if term == "" || translation == "" || code == "" {
		return
	}
	byLang, ok := t.entries[term]
	if !ok {
		byLang = make(map[string]string)
		t.entries[term] = byLang
	}
	byLang[code] = translation
}

func (t *Table) Lookup(term, code string) (string, bool) {
	if t == nil {
		return "", false
	}
	byLang, ok := t.entries[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return "", false
	}
	tr, ok := byLang[lang.Normalize(code)]
	return tr, ok
}

// Translate returns the translation of term, or term itself when none exists.
func (t *Table) Translate(term, code string) string {
	if tr, ok := t.Lookup(term, code); ok {
		return tr
	}
	return term
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Languages lists the language codes present in the table.
func (t *Table) Languages() []string {
	seen := make(map[string]bool)
	if t != nil {
		for _, byLang := range t.entries {
			for code := range byLang {
				seen[code] = true
			}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LoadCSV reads a table whose header is "word,<lang>,<lang>,..." and whose rows
// hold a base-language word followed by its translations.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need a word column and at least one language", ErrNoHeader)
	}

	t := NewTable()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		for i := 1; i < len(record) && i < len(header); i++ {
			t.Add(record[0], header[i], record[i])
		}
	}
	return t, nil
}

// LoadFile loads a CSV table from path. A missing file yields an empty table.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTable(), nil
		}
		return nil, err
	}
	defer f.Close()

	t, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return t, nil
}
