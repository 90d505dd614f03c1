package report

import "strings"

// Fields is the best-effort structure recovered from report text. Any field
// may be empty.
type Fields struct {
	Crew        string `json:"crew,omitempty"`
	Date        string `json:"date,omitempty"`
	Drone       string `json:"drone,omitempty"`
	MissionType string `json:"missionType,omitempty"`
	Ammo        string `json:"ammo,omitempty"`
	Stream      string `json:"stream,omitempty"`
	ImpactTime  string `json:"impactTime,omitempty"`
	Result      string `json:"result,omitempty"`
}

// Parse maps report text back to fields: line one is the crew, line two the
// date, the rest are "label: value" pairs split on the first colon. Unknown
// labels and lines without a colon are dropped. Parse never fails.
func Parse(text string) Fields {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	var f Fields
	if len(lines) > 0 {
		f.Crew = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		f.Date = strings.TrimSpace(lines[1])
	}
	if len(lines) <= 2 {
		return f
	}

	for _, line := range lines[2:] {
		idx := strings.Index(line, ":")
		if idx == -1 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		switch key {
		case LabelDrone:
			f.Drone = value
		case LabelMissionType:
			f.MissionType = value
		case LabelAmmo:
			f.Ammo = value
		case LabelStream:
			f.Stream = value
		case LabelImpact:
			f.ImpactTime = value
		case LabelResult:
			f.Result = value
		}
	}
	return f
}
