// Package manifest loads problem definitions from YAML files, so alternate
// beam instances (different loads, materials, stock catalogs) can be run
// without recompiling. A manifest is the on-disk form of a
// problem.Definition and goes through the same validation.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/beamga/beam"
	"github.com/lixenwraith/beamga/discrete"
	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/problem"
)

// Document is the YAML schema of one problem manifest.
type Document struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Beam BeamDoc `yaml:"beam"`

	// ValueSets are named catalogs referenced by coded slots.
	ValueSets map[string][]float64 `yaml:"value_sets"`

	// Slots lists per-slot bounds in design-vector order.
	Slots []SlotDoc `yaml:"slots"`
}

// BeamDoc carries the physical constants.
type BeamDoc struct {
	Load          float64 `yaml:"load"`
	SectionLength float64 `yaml:"section_length"`
	Elasticity    float64 `yaml:"elasticity"`
	MaxStress     float64 `yaml:"max_stress"`
	MaxDeflection float64 `yaml:"max_deflection"`
	MaxAspect     float64 `yaml:"max_aspect"`
}

// SlotDoc describes one design variable. A slot naming a ValueSet is
// integer-coded over that catalog; its min/max are implied as [1, len].
type SlotDoc struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Integer  bool    `yaml:"integer"`
	ValueSet string  `yaml:"value_set,omitempty"`
}

// Parse decodes and resolves a manifest into a validated definition.
func Parse(data []byte) (*problem.Definition, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return doc.Resolve()
}

// Load reads and parses a manifest file.
func Load(path string) (*problem.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return d, nil
}

// Resolve turns the document into a problem definition, wiring value-set
// references into an encoding map and deriving coded-slot bounds.
func (doc *Document) Resolve() (*problem.Definition, error) {
	d := &problem.Definition{
		Name:        doc.Name,
		Description: doc.Description,
		Beam: beam.Config{
			Load:          doc.Beam.Load,
			SectionLength: doc.Beam.SectionLength,
			Elasticity:    doc.Beam.Elasticity,
			MaxStress:     doc.Beam.MaxStress,
			MaxDeflection: doc.Beam.MaxDeflection,
			MaxAspect:     doc.Beam.MaxAspect,
		},
		Encoding: make(discrete.EncodingMap),
		Bounds:   make([]genetic.ParameterBounds, len(doc.Slots)),
	}

	for i, slot := range doc.Slots {
		if slot.ValueSet == "" {
			d.Bounds[i] = genetic.ParameterBounds{Min: slot.Min, Max: slot.Max, Integer: slot.Integer}
			continue
		}

		set, ok := doc.ValueSets[slot.ValueSet]
		if !ok {
			return nil, fmt.Errorf("slot %d references unknown value set %q", i+1, slot.ValueSet)
		}
		d.Encoding[i+1] = discrete.ValueSet(set)
		d.Bounds[i] = genetic.ParameterBounds{Min: 1, Max: float64(len(set)), Integer: true}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
