package contracts

// Zone is the risk band derived from a Z-Score
type Zone string

const (
	ZoneSafe     Zone = "Safe Zone"
	ZoneGrey     Zone = "Grey Zone"
	ZoneDistress Zone = "Distress Zone"
)

// Zones lists every band from healthiest to riskiest
var Zones = []Zone{ZoneSafe, ZoneGrey, ZoneDistress}

// String returns the band label
func (z Zone) String() string {
	return string(z)
}

// Description returns the short reading of the band
func (z Zone) Description() string {
	switch z {
	case ZoneSafe:
		return "Strong Financial Position"
	case ZoneGrey:
		return "Monitor Closely"
	case ZoneDistress:
		return "High Bankruptcy Risk"
	default:
		return "Unknown"
	}
}

// Status returns the label with its description, e.g. "Grey Zone (Monitor Closely)"
func (z Zone) Status() string {
	return string(z) + " (" + z.Description() + ")"
}

// CSSClass returns the dashboard class used to style the band
func (z Zone) CSSClass() string {
	switch z {
	case ZoneSafe:
		return "zone-safe"
	case ZoneGrey:
		return "zone-grey"
	case ZoneDistress:
		return "zone-distress"
	default:
		return "zone-unknown"
	}
}

// Color returns the band colour as a hex string
func (z Zone) Color() string {
	switch z {
	case ZoneSafe:
		return "#2e7d32"
	case ZoneGrey:
		return "#f9a825"
	case ZoneDistress:
		return "#c62828"
	default:
		return "#757575"
	}
}

// IsValid reports whether z is one of the three known bands
func (z Zone) IsValid() bool {
	switch z {
	case ZoneSafe, ZoneGrey, ZoneDistress:
		return true
	}
	return false
}
