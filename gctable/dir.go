package gctable

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/codonmark/codonmark/errs"
)

// AssociationsFile is the name of the file mapping genetic code ids
// to table files in a table directory.
const AssociationsFile = "gc_file_associations.json"

type dir struct {
	path  string
	files map[int]string
}

// Dir returns a provider reading tables from a directory in the
// gc_files layout: AssociationsFile maps ids (as strings) to file
// names relative to the directory, each file holds one table in the
// format written by Table.MarshalJSON.
//
// The associations file is read once; table files are read on every
// Load.
func Dir(path string) (Provider, error) {
	const op = "gctable.Dir"
	data, err := os.ReadFile(filepath.Join(path, AssociationsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.NotFound, op, err, "no table directory at %s", path)
		}
		return nil, err
	}
	var assoc map[string]string
	if err = json.Unmarshal(data, &assoc); err != nil {
		return nil, errs.Wrap(errs.Unresolvable, op, err, "reading %s", AssociationsFile)
	}
	d := dir{path: path, files: make(map[int]string, len(assoc))}
	for k, fn := range assoc {
		id, err := strconv.Atoi(k)
		if err != nil || id <= 0 {
			return nil, errs.New(errs.Unresolvable, op, "bad genetic code id %q in %s", k, AssociationsFile)
		}
		d.files[id] = fn
	}
	log.Debugf("Table directory %s: %d genetic codes", path, len(d.files))
	return d, nil
}

func (d dir) Load(id int) (*Table, error) {
	const op = "gctable.Load"
	fn, ok := d.files[id]
	if !ok {
		return nil, errs.New(errs.NotFound, op, "no genetic code with id=%d in %s", id, d.path)
	}
	data, err := os.ReadFile(filepath.Join(d.path, fn))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.NotFound, op, err, "table file for id=%d", id)
		}
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
	return ParseTable(id, name, data)
}

func (d dir) IDs() []int {
	ids := make([]int, 0, len(d.files))
	for id := range d.files {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// fileName returns a table file name, e.g. gc01_standard.json.
func fileName(t *Table) string {
	name := t.Name
	if i := strings.IndexAny(name, ";,"); i >= 0 {
		name = name[:i]
	}
	slug := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			return '_'
		}
		return -1
	}, strings.TrimSpace(name))
	if slug == "" {
		return fmt.Sprintf("gc%02d.json", t.ID)
	}
	return fmt.Sprintf("gc%02d_%s.json", t.ID, slug)
}

// WriteDir writes tables and the associations file into path, which
// is created if needed. A directory written by WriteDir can be read
// with Dir.
func WriteDir(path string, tables []*Table) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	assoc := make(map[string]string, len(tables))
	for _, t := range tables {
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return err
		}
		fn := fileName(t)
		if err = os.WriteFile(filepath.Join(path, fn), append(data, '\n'), 0o644); err != nil {
			return err
		}
		assoc[strconv.Itoa(t.ID)] = fn
	}
	data, err := json.MarshalIndent(assoc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, AssociationsFile), append(data, '\n'), 0o644)
}
