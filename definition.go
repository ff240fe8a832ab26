package tablefmt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition describes a table as data, so a layout can live in a config
// file instead of code:
//
//	columns:
//	  - "|{:^10}|"
//	  - "  {:^7} |"
//	headers: [Name, Count]
//	hrule: frame-header
//	hrule_chars: "+-+"
//
// hrule and hrule_chars are optional and default to "frame-header" and
// [DefaultHRuleChars].
type Definition struct {
	Columns    []string `yaml:"columns"`
	Headers    []string `yaml:"headers"`
	HRule      string   `yaml:"hrule"`
	HRuleChars string   `yaml:"hrule_chars"`
}

// ParseDefinition decodes a YAML table definition.
func ParseDefinition(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse definition: %w", err)
	}
	return d, nil
}

// Table realizes the definition.
func (d Definition) Table() (*Table, error) {
	hrule := HRuleFrameHeader
	if d.HRule != "" {
		var err error
		if hrule, err = ParseHRule(d.HRule); err != nil {
			return nil, err
		}
	}
	chars := d.HRuleChars
	if chars == "" {
		chars = DefaultHRuleChars
	}
	return NewTable(d.Columns, d.Headers, hrule, chars)
}
