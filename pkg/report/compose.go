package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/irreligious86/Report-UAV/pkg/field"
)

const (
	// DefaultCrew is used when the crew field is left blank.
	DefaultCrew = "Дакар"

	// StreamPlaceholder stands in for an empty stream field.
	StreamPlaceholder = "---"

	dateLayout = "02.01.2006"
)

// Field labels of the rendered report.
const (
	LabelDrone       = "Борт"
	LabelMissionType = "Характер"
	LabelTakeoff     = "Час зльоту"
	LabelImpact      = "Час ураження/втрати"
	LabelCoordinates = "Координати"
	LabelAmmo        = "Боєприпас"
	LabelStream      = "Стрім"
	LabelResult      = "Результат"
)

// ErrCoordinates is returned by Compose when either coordinate group is not
// exactly five digits.
var ErrCoordinates = field.ErrCoordinates

// Snapshot is the validated form state for one generate action.
type Snapshot struct {
	Crew string
	// Counter is the crew numbering value, 0 when absent.
	Counter     int
	Date        time.Time
	Takeoff     string
	Impact      string
	Drone       string
	MissionType string
	Easting     string
	Northing    string
	MgrsPrefix  string
	Ammo        string
	Stream      string
	Result      string
}

// CrewLine renders the first report line.
func (s Snapshot) CrewLine() string {
	crew := s.Crew
	if crew == "" {
		crew = DefaultCrew
	}
	if s.Counter == 0 {
		return crew
	}
	return fmt.Sprintf("%s (%d)", crew, s.Counter)
}

// FormatDate renders d as DD.MM.YYYY, or "" for the zero date.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Compose renders the canonical report text. It has no side effects.
func Compose(s Snapshot) (string, error) {
	easting := strings.TrimSpace(s.Easting)
	northing := strings.TrimSpace(s.Northing)
	if !field.ValidCoordinate(easting) || !field.ValidCoordinate(northing) {
		return "", ErrCoordinates
	}

	stream := s.Stream
	if strings.TrimSpace(stream) == "" {
		stream = StreamPlaceholder
	}

	lines := []string{
		s.CrewLine(),
		FormatDate(s.Date),
		labelled(LabelDrone, s.Drone),
		labelled(LabelMissionType, s.MissionType),
		labelled(LabelTakeoff, s.Takeoff),
		labelled(LabelImpact, s.Impact),
		labelled(LabelCoordinates, fmt.Sprintf("%s %s %s", s.MgrsPrefix, easting, northing)),
		labelled(LabelAmmo, s.Ammo),
		labelled(LabelStream, stream),
		labelled(LabelResult, s.Result),
	}
	return strings.Join(lines, "\n"), nil
}

func labelled(label, value string) string {
	return label + ": " + value
}
