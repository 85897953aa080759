package problem

import (
	"github.com/lixenwraith/beamga/beam"
	"github.com/lixenwraith/beamga/discrete"
	"github.com/lixenwraith/beamga/genetic"
)

// Catalogs for the discretized cantilever variant. Sections 2 and 3 are
// restricted to stock widths and heights; the two catalogs are shared
// between their respective slots.
var (
	WidthCatalog  = discrete.ValueSet{2.4, 2.6, 2.8, 3.1}
	HeightCatalog = discrete.ValueSet{45, 50, 55, 60}
)

// Built-in problem names.
const (
	NameContinuous = "cantilever-continuous"
	NameDiscrete   = "cantilever-discrete"
)

// VariantContinuous is the cantilever with only the first section's width
// and height integer-constrained; the remaining slots are continuous.
func VariantContinuous() *Definition {
	return &Definition{
		Name:        NameContinuous,
		Description: "stepped cantilever, section 1 integer, sections 2-5 continuous",
		Beam:        beam.DefaultConfig(),
		Bounds: []genetic.ParameterBounds{
			{Min: 1, Max: 5, Integer: true},
			{Min: 30, Max: 65, Integer: true},
			{Min: 2.4, Max: 3.1},
			{Min: 45, Max: 60},
			{Min: 2.4, Max: 3.1},
			{Min: 45, Max: 60},
			{Min: 1, Max: 5},
			{Min: 30, Max: 65},
			{Min: 1, Max: 5},
			{Min: 30, Max: 65},
		},
	}
}

// VariantDiscrete additionally restricts sections 2 and 3 to catalog
// values, searched through integer codes in slots 3-6.
func VariantDiscrete() *Definition {
	return &Definition{
		Name:        NameDiscrete,
		Description: "stepped cantilever, sections 2-3 drawn from stock catalogs",
		Beam:        beam.DefaultConfig(),
		Encoding: discrete.EncodingMap{
			3: WidthCatalog,
			4: HeightCatalog,
			5: WidthCatalog,
			6: HeightCatalog,
		},
		Bounds: []genetic.ParameterBounds{
			{Min: 1, Max: 5, Integer: true},
			{Min: 30, Max: 65, Integer: true},
			{Min: 1, Max: 4, Integer: true},
			{Min: 1, Max: 4, Integer: true},
			{Min: 1, Max: 4, Integer: true},
			{Min: 1, Max: 4, Integer: true},
			{Min: 1, Max: 5},
			{Min: 30, Max: 65},
			{Min: 1, Max: 5},
			{Min: 30, Max: 65},
		},
	}
}
