package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"depths-of-the-abyss/internal/simerr"
	"depths-of-the-abyss/internal/weapon"
)

// CurrentDataVersion is the schema version this build expects. Loading
// a document with a different DataVersion is accepted (unknown future
// fields are ignored per spec §4.12/§6); Load does not compare the two.
const CurrentDataVersion = "1.0"

// Load reads and parses a YAML data document from path. Weapons are not
// stored in the YAML document itself (they're covered by
// internal/weapon.DefaultTable, which this package merges in); malformed
// or unreadable input surfaces as a *simerr.Error with Kind BadData so
// the host can decide whether to fall back to DefaultDocument.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, simerr.Wrap(simerr.BadData, fmt.Sprintf("read data document %q", path), err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, simerr.Wrap(simerr.BadData, fmt.Sprintf("parse data document %q", path), err)
	}
	if doc.DataVersion == "" {
		return nil, simerr.New(simerr.BadData, fmt.Sprintf("data document %q missing data_version", path))
	}
	doc.Weapons = weapon.DefaultTable
	return &doc, nil
}
