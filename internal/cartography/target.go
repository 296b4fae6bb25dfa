package cartography

// TargetKind says what kind of place a pathway leads to. It is fixed when the
// pathway is created and never re-derived during traversal.
type TargetKind int

const (
	TargetRoom       TargetKind = iota // Another room in the same zone and locale
	TargetZoneEdge                     // A room in a different zone
	TargetLocaleEdge                   // A room in a different locale of the same zone
)

// String returns the string representation of a TargetKind
func (k TargetKind) String() string {
	switch k {
	case TargetRoom:
		return "room"
	case TargetZoneEdge:
		return "zone"
	case TargetLocaleEdge:
		return "locale"
	default:
		return "unknown"
	}
}

// IsEdge returns true if the pathway leaves the origin's region
func (k TargetKind) IsEdge() bool {
	return k == TargetZoneEdge || k == TargetLocaleEdge
}

// ParseTargetKind converts a string to a TargetKind
func ParseTargetKind(s string) (TargetKind, bool) {
	switch s {
	case "room", "":
		return TargetRoom, true
	case "zone", "zone_edge":
		return TargetZoneEdge, true
	case "locale", "locale_edge":
		return TargetLocaleEdge, true
	default:
		return TargetRoom, false
	}
}

// ClassifyTarget tags a new pathway by comparing the regions of its two ends.
func ClassifyTarget(originZone, originLocale, destZone, destLocale string) TargetKind {
	switch {
	case originZone != destZone:
		return TargetZoneEdge
	case originLocale != destLocale:
		return TargetLocaleEdge
	default:
		return TargetRoom
	}
}
