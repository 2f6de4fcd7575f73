// Package ptable loads tables of standard atomic masses.
//
// A table source is a list of element records, each with at least a symbol
// and an atomic mass:
//
//	{"elements": [{"symbol": "H", "atomic_mass": 1.008}, ...]}
//
// YAML sources have the same shape. Records without a symbol or a numeric
// mass are left out of the table.
package ptable

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/formula"
)

// Format is a table source format.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf chooses a format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("no table format for %q", path)
}

// ErrNoElements is returned when a source has no elements list.
var ErrNoElements = errors.New("no elements list")

// ReadJSON reads a table from JSON.
func ReadJSON(data []byte) (formula.MassTable, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	elems := gjson.GetBytes(data, "elements")
	if !elems.IsArray() {
		return nil, ErrNoElements
	}
	t := make(formula.MassTable, len(elems.Array()))
	elems.ForEach(func(_, rec gjson.Result) bool {
		sym := rec.Get("symbol")
		mass := rec.Get("atomic_mass")
		if sym.Type != gjson.String || mass.Type != gjson.Number {
			return true
		}
		add(t, sym.String(), mass.Float())
		return true
	})
	return t, nil
}

// ReadYAML reads a table from YAML.
func ReadYAML(data []byte) (formula.MassTable, error) {
	var src struct {
		Elements *[]map[string]any `yaml:"elements"`
	}
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if src.Elements == nil {
		return nil, ErrNoElements
	}
	t := make(formula.MassTable, len(*src.Elements))
	for _, rec := range *src.Elements {
		sym, _ := rec["symbol"].(string)
		var mass float64
		switch m := rec["atomic_mass"].(type) {
		case float64:
			mass = m
		case int:
			mass = float64(m)
		case int64:
			mass = float64(m)
		case uint64:
			mass = float64(m)
		default:
			continue
		}
		add(t, sym, mass)
	}
	return t, nil
}

// add adds a record to t if it has a symbol and a positive mass.
func add(t formula.MassTable, sym string, mass float64) {
	if sym == "" || !(mass > 0) {
		return
	}
	t[sym] = mass
}

// Load reads a table in the given format.
func Load(r io.Reader, f Format) (formula.MassTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch f {
	case JSON:
		return ReadJSON(data)
	case YAML:
		return ReadYAML(data)
	default:
		panic("ptable: invalid format " + f.String())
	}
}

// LoadFile reads a table from a file, choosing the format by its extension.
func LoadFile(path string) (formula.MassTable, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	t, err := Load(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

//go:embed elements.json
var elementsJSON []byte

var (
	defaultOnce  sync.Once
	defaultTable formula.MassTable
)

// Default returns a copy of the built-in table of all 118 elements, using
// conventional standard atomic weights and the mass number of the most stable
// isotope for elements that have none.
func Default() formula.MassTable {
	defaultOnce.Do(func() {
		t, err := ReadJSON(elementsJSON)
		if err != nil {
			panic("ptable: built-in table: " + err.Error())
		}
		defaultTable = t
	})
	r := make(formula.MassTable, len(defaultTable))
	for k, v := range defaultTable {
		r[k] = v
	}
	return r
}
