package attendance

import "time"

// Status is the unified day-outcome vocabulary. Automatic outcomes come from
// the classifier; manual outcomes from user assertion. The legacy
// completed/late/early vocabulary is a derived view, see LegacyStatus.
type Status string

const (
	// Automatic outcomes
	StatusDuCong       Status = "DU_CONG"          // sufficient / complete
	StatusDiMuon       Status = "DI_MUON"          // late
	StatusVeSom        Status = "VE_SOM"           // early leave
	StatusDiMuonVeSom  Status = "DI_MUON_VE_SOM"   // late and early leave
	StatusChuaDi       Status = "CHUA_DI"          // not yet departed
	StatusDaDiChuaVao  Status = "DA_DI_CHUA_VAO"   // departed, not checked in
	StatusChuaRa       Status = "CHUA_RA"          // checked in, not out
	StatusThieuLog     Status = "THIEU_LOG"        // logs unusable / missing

	// Manual outcomes
	StatusNghiPhep Status = "NGHI_PHEP" // leave
	StatusNghiBenh Status = "NGHI_BENH" // sick
	StatusNghiLe   Status = "NGHI_LE"   // public holiday
	StatusVangMat  Status = "VANG_MAT"  // absent
	StatusCongTac  Status = "CONG_TAC"  // business trip
	StatusReview   Status = "RV"        // needs review
)

// Control commands accepted alongside the manual vocabulary. They are acted
// on but never stored as a day's status.
const (
	CommandRecalculate Status = "TINH_THEO_CHAM_CONG"
	CommandClearManual Status = "XOA_TRANG_THAI_THU_CONG"
)

var manualStatuses = map[Status]bool{
	StatusNghiPhep: true,
	StatusNghiBenh: true,
	StatusNghiLe:   true,
	StatusVangMat:  true,
	StatusCongTac:  true,
	StatusReview:   true,
}

// IsManual reports whether s belongs to the manual-override vocabulary.
func (s Status) IsManual() bool {
	return manualStatuses[s]
}

// IsWorked reports whether s represents a day with countable worked hours.
func (s Status) IsWorked() bool {
	switch s {
	case StatusDuCong, StatusDiMuon, StatusVeSom, StatusDiMuonVeSom:
		return true
	}
	return false
}

// DayStatus is the persisted per-date outcome record: classification result,
// hour breakdown, and any manual override metadata for a single work date.
type DayStatus struct {
	Date             string // YYYY-MM-DD
	Status           Status
	AppliedShiftID   *string // overrides the active shift for this date only
	CheckInAt        *time.Time
	CheckOutAt       *time.Time
	StandardHours    float64
	OTHours          float64
	SundayHours      float64
	NightHours       float64
	TotalHours       float64
	LateMinutes      int
	EarlyMinutes     int
	IsHolidayWork    bool
	IsManualOverride bool
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LegacyStatus is the older, coarser status vocabulary kept for consumers of
// records computed before per-log classification existed.
type LegacyStatus string

const (
	LegacyCompleted       LegacyStatus = "completed"
	LegacyLate            LegacyStatus = "late"
	LegacyEarly           LegacyStatus = "early"
	LegacyAbsent          LegacyStatus = "absent"
	LegacyPending         LegacyStatus = "pending"
	LegacyManualPresent   LegacyStatus = "manual_present"
	LegacyManualAbsent    LegacyStatus = "manual_absent"
	LegacyManualHoliday   LegacyStatus = "manual_holiday"
	LegacyManualCompleted LegacyStatus = "manual_completed"
	LegacyManualReview    LegacyStatus = "manual_review"
)

// LegacyStatus maps the unified status onto the older vocabulary.
func (d DayStatus) LegacyStatus() LegacyStatus {
	if d.IsManualOverride {
		switch d.Status {
		case StatusNghiLe:
			return LegacyManualHoliday
		case StatusVangMat, StatusNghiPhep, StatusNghiBenh:
			return LegacyManualAbsent
		case StatusCongTac:
			return LegacyManualPresent
		case StatusReview:
			return LegacyManualReview
		case StatusDuCong:
			return LegacyManualCompleted
		default:
			return LegacyManualPresent
		}
	}

	switch d.Status {
	case StatusDuCong:
		return LegacyCompleted
	case StatusDiMuon, StatusDiMuonVeSom:
		return LegacyLate
	case StatusVeSom:
		return LegacyEarly
	case StatusChuaDi:
		return LegacyAbsent
	case StatusDaDiChuaVao, StatusChuaRa, StatusThieuLog:
		return LegacyPending
	default:
		return LegacyPending
	}
}
