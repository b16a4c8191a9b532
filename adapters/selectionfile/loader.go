// Package selectionfile loads selection scenarios for the CLI. A scenario
// is the serialized form of the caller-owned selection state, in JSON or
// YAML.
package selectionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

type fileSelection struct {
	Products map[string]fileProduct `json:"products" yaml:"products"`
}

type fileProduct struct {
	Enabled  bool       `json:"enabled" yaml:"enabled"`
	Tier     string     `json:"tier,omitempty" yaml:"tier,omitempty"`
	Units    []fileUnit `json:"units,omitempty" yaml:"units,omitempty"`
	Quantity int        `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

type fileUnit struct {
	ID   int    `json:"id" yaml:"id"`
	Tier string `json:"tier" yaml:"tier"`
}

// Load reads a selection scenario, picking the codec from the extension
// (.json, .yaml, .yml).
func Load(path string) (*types.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading selection scenario", err)
	}

	var doc fileSelection
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Parsing("decoding selection YAML: "+path, err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Parsing("decoding selection JSON: "+path, err)
		}
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported selection format: %s", filepath.Ext(path))
	}

	return doc.toSelection(), nil
}

func (d *fileSelection) toSelection() *types.Selection {
	sel := types.NewSelection()
	for id, fp := range d.Products {
		ps := &types.ProductSelection{
			Enabled:  fp.Enabled,
			TierID:   types.TierID(fp.Tier),
			Quantity: fp.Quantity,
		}
		for _, u := range fp.Units {
			ps.Units = append(ps.Units, types.UnitSelection{
				ID:     u.ID,
				TierID: types.TierID(u.Tier),
			})
		}
		sel.Products[types.ProductID(id)] = ps
	}
	return sel
}
