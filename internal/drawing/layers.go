// Package drawing emits column details as DXF: elevations with
// reinforcement, dimensions and annotations, plus per-floor cross-sections.
package drawing

import (
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// Standard layer names
const (
	LayerConcrete   = "CONCRETE"
	LayerRebarMain  = "REBAR-MAIN"
	LayerRebarLinks = "REBAR-LINKS"
	LayerDimensions = "DIMENSIONS"
	LayerText       = "TEXT"
	LayerSections   = "SECTIONS"
	LayerHidden     = "HIDDEN"
	LayerCenter     = "CENTER"
)

// Layer describes one drawing layer of the standard set.
type Layer struct {
	Name     string
	Color    color.ColorNumber
	LineType *table.LineType
}

// StandardLayers is the layer set every column drawing uses.
var StandardLayers = []Layer{
	{Name: LayerConcrete, Color: color.White, LineType: table.LT_CONTINUOUS},
	{Name: LayerRebarMain, Color: color.Red, LineType: table.LT_CONTINUOUS},
	{Name: LayerRebarLinks, Color: color.Green, LineType: table.LT_CONTINUOUS},
	{Name: LayerDimensions, Color: color.Cyan, LineType: table.LT_CONTINUOUS},
	{Name: LayerText, Color: color.White, LineType: table.LT_CONTINUOUS},
	{Name: LayerSections, Color: color.Magenta, LineType: table.LT_CONTINUOUS},
	{Name: LayerHidden, Color: color.ColorNumber(9), LineType: table.LT_HIDDEN},
	{Name: LayerCenter, Color: color.Red, LineType: table.LT_CONTINUOUS},
}
