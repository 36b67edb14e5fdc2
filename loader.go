package bliss

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDictionary reads a cleaned multi-language dictionary JSON file:
// a map of symbol id → record, as produced by CleanDictionary.
func LoadDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	dict, err := ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return dict, nil
}

// ParseDictionary decodes a dictionary from JSON bytes.
func ParseDictionary(data []byte) (Dictionary, error) {
	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// semanticTablesJSON is the on-disk form of the two semantic tables.
type semanticTablesJSON struct {
	Modifiers  map[SymbolID]json.RawMessage `json:"modifiers"`
	Indicators map[SymbolID]json.RawMessage `json:"indicators"`
}

// LoadSemanticTables reads the modifier/indicator semantic tables from
// a JSON file of the form
//
//	{"modifiers": {id: descriptor}, "indicators": {id: descriptor}}
//
// where each descriptor uses the simple/or/and shapes.
func LoadSemanticTables(path string) (*SemanticTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load semantic tables: %w", err)
	}
	tables, err := ParseSemanticTables(data)
	if err != nil {
		return nil, fmt.Errorf("load semantic tables %s: %w", path, err)
	}
	return tables, nil
}

// ParseSemanticTables decodes the semantic tables from JSON bytes. Ids
// present in both tables are rejected: the key sets must be disjoint.
func ParseSemanticTables(data []byte) (*SemanticTables, error) {
	var raw semanticTablesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	tables := &SemanticTables{
		Modifiers:  make(map[SymbolID]SemanticDescriptor, len(raw.Modifiers)),
		Indicators: make(map[SymbolID]SemanticDescriptor, len(raw.Indicators)),
	}
	for id, msg := range raw.Modifiers {
		d, err := decodeDescriptor(msg)
		if err != nil {
			return nil, fmt.Errorf("modifier %s: %w", id, err)
		}
		tables.Modifiers[id] = d
	}
	for id, msg := range raw.Indicators {
		if _, dup := tables.Modifiers[id]; dup {
			return nil, fmt.Errorf("symbol %s present in both semantic tables", id)
		}
		d, err := decodeDescriptor(msg)
		if err != nil {
			return nil, fmt.Errorf("indicator %s: %w", id, err)
		}
		tables.Indicators[id] = d
	}
	return tables, nil
}

// LoadRawDictionary reads an uncleaned symbol-explanation JSON file,
// the input of the offline cleaning pipeline.
func LoadRawDictionary(path string) (RawDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load raw dictionary: %w", err)
	}
	var raw RawDictionary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load raw dictionary %s: %w", path, err)
	}
	return raw, nil
}

// WriteDictionary writes a cleaned dictionary as indented JSON.
func WriteDictionary(path string, dict Dictionary) error {
	data, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write dictionary %s: %w", path, err)
	}
	return nil
}
