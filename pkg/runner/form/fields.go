package form

import (
	"github.com/irreligious86/Report-UAV/pkg/field"
	"github.com/irreligious86/Report-UAV/pkg/lists"
	"github.com/irreligious86/Report-UAV/pkg/report"
)

// fieldID orders the form rows.
type fieldID int

const (
	fieldCrew fieldID = iota
	fieldCounter
	fieldDate
	fieldTakeoff
	fieldImpact
	fieldDrone
	fieldMission
	fieldEasting
	fieldNorthing
	fieldMgrs
	fieldAmmo
	fieldStream
	fieldResult

	fieldCount
)

func (f fieldID) label() string {
	switch f {
	case fieldCrew:
		return "Екіпаж"
	case fieldCounter:
		return "Лічильник"
	case fieldDate:
		return "Дата"
	case fieldTakeoff:
		return report.LabelTakeoff
	case fieldImpact:
		return report.LabelImpact
	case fieldDrone:
		return report.LabelDrone
	case fieldMission:
		return report.LabelMissionType
	case fieldEasting:
		return "Координати X"
	case fieldNorthing:
		return "Координати Y"
	case fieldMgrs:
		return lists.MgrsPrefixes.Label()
	case fieldAmmo:
		return report.LabelAmmo
	case fieldStream:
		return report.LabelStream
	case fieldResult:
		return report.LabelResult
	}
	return ""
}

// category is the option list behind a field, if any.
func (f fieldID) category() (lists.Category, bool) {
	switch f {
	case fieldDrone:
		return lists.Drones, true
	case fieldMission:
		return lists.MissionTypes, true
	case fieldMgrs:
		return lists.MgrsPrefixes, true
	case fieldAmmo:
		return lists.Ammo, true
	case fieldResult:
		return lists.Results, true
	}
	return "", false
}

// listBacked reports whether the field can cycle through options.
func (f fieldID) listBacked() bool {
	_, ok := f.category()
	return ok || f == fieldStream
}

func (f fieldID) placeholder() string {
	switch f {
	case fieldCrew:
		return report.DefaultCrew
	case fieldCounter:
		return "1–25"
	case fieldDate:
		return "YYYY-MM-DD"
	case fieldTakeoff, fieldImpact:
		return "HH:MM"
	case fieldEasting, fieldNorthing:
		return "00000"
	case fieldStream:
		return report.StreamPlaceholder
	}
	return ""
}

func (f fieldID) charLimit() int {
	switch f {
	case fieldCounter:
		return 2
	case fieldDate:
		return 10
	case fieldTakeoff, fieldImpact:
		return 5
	case fieldEasting, fieldNorthing:
		return field.CoordinateDigits
	case fieldDrone:
		return field.MaxDroneLen
	case fieldMission:
		return field.MaxMissionTypeLen
	case fieldAmmo:
		return field.MaxAmmoLen
	case fieldResult:
		return field.MaxResultLen
	}
	return 64
}
