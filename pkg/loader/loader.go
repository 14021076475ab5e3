// Package loader parses the sectioned list documents ldx displays.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a sectioned list input. Two YAML shapes parse into it: the
// full form with a sections list, and a bare sequence of items, which is
// treated as a single untitled section.
type Document struct {
	Name     string    `yaml:"name"`
	Sections []Section `yaml:"sections"`
}

// Section is one titled group of items. Title and Footer are optional; an
// empty string means the section renders without that decoration.
type Section struct {
	Title  string   `yaml:"title"`
	Footer string   `yaml:"footer"`
	Items  []string `yaml:"items"`
}

// Parse decodes a document from YAML text.
func Parse(input string) (*Document, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	// Bare sequence form: every item becomes a row of one untitled section.
	if strings.HasPrefix(input, "-") || strings.HasPrefix(input, "[") {
		var items []string
		if err := yaml.Unmarshal([]byte(input), &items); err != nil {
			return nil, fmt.Errorf("decode item list: %w", err)
		}
		return &Document{Sections: []Section{{Items: items}}}, nil
	}

	var doc Document
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("document has no sections")
	}
	return &doc, nil
}

// Load reads and parses a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(string(data))
}

// LoadReader reads and parses a document from r, typically stdin.
func LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(string(data))
}

// ItemSections strips the document down to the two-level item collection
// the adapter indexes.
func (d *Document) ItemSections() [][]string {
	sections := make([][]string, len(d.Sections))
	for i, s := range d.Sections {
		sections[i] = s.Items
	}
	return sections
}

// HeaderTitles returns the positional header title list, one slot per
// section.
func (d *Document) HeaderTitles() []string {
	titles := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		titles[i] = s.Title
	}
	return titles
}

// FooterTitles returns the positional footer title list.
func (d *Document) FooterTitles() []string {
	titles := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		titles[i] = s.Footer
	}
	return titles
}
