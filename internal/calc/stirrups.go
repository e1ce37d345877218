package calc

// Zone identifies the tiered spacing region a stirrup falls in.
type Zone string

const (
	// ZoneEdge covers the bottom and top thirds of the usable floor height,
	// where shear demand near the beam-column joints calls for tighter spacing.
	ZoneEdge Zone = "edge"
	// ZoneMid covers the middle third.
	ZoneMid Zone = "mid"
)

// ZonePosition is one stirrup elevation produced by the zoning rule.
type ZonePosition struct {
	Y    float64 // mm, absolute elevation
	Zone Zone
}

// StirrupZonePositions generates stirrup elevations for one floor using the
// tiered spacing rule. The usable height (floor height minus beam depth) is
// split into three equal zones: the bottom and top thirds take the edge
// spacing, the middle third the mid spacing. Within each zone, positions
// advance by the zone spacing starting one increment above the zone start and
// stop strictly before the zone end, so a position landing exactly on a zone
// boundary belongs to neither zone.
//
// This is the single authoritative implementation of the zoning rule; both
// the layout calculator and entity.StirrupPattern build on it.
func StirrupZonePositions(startY, height, beamDepth, edgeSpacing, midSpacing float64) []ZonePosition {
	var positions []ZonePosition

	netHeight := height - beamDepth
	third := netHeight / 3

	// Bottom third
	for y := startY + edgeSpacing; y < startY+third; y += edgeSpacing {
		positions = append(positions, ZonePosition{Y: y, Zone: ZoneEdge})
	}

	// Middle third
	for y := startY + third + midSpacing; y < startY+2*third; y += midSpacing {
		positions = append(positions, ZonePosition{Y: y, Zone: ZoneMid})
	}

	// Top third, up to the beam soffit
	for y := startY + 2*third + edgeSpacing; y < startY+netHeight; y += edgeSpacing {
		positions = append(positions, ZonePosition{Y: y, Zone: ZoneEdge})
	}

	return positions
}
