package field

// DisplayMode controls whether a list-backed field offers its options or
// accepts free text.
type DisplayMode int

const (
	// Enumerated shows the option list for the field.
	Enumerated DisplayMode = iota
	// Freeform accepts typed text, with the option list as suggestions.
	Freeform
)

// Toggle switches between Enumerated and Freeform.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Enumerated {
		return Freeform
	}
	return Enumerated
}

func (m DisplayMode) String() string {
	switch m {
	case Freeform:
		return "freeform"
	default:
		return "enumerated"
	}
}

// Maximum lengths of freeform values for the list-backed fields.
const (
	MaxDroneLen       = 50
	MaxMissionTypeLen = 50
	MaxAmmoLen        = 50
	MaxResultLen      = 100
)

// Limit cuts s to at most n characters.
func Limit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
