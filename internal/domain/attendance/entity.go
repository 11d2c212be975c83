package attendance

import "time"

// LogType is one punch event kind. Types form a strictly ordered progression
// within a day; at most one of each is expected under normal operation, but
// the classifier tolerates any subset.
type LogType string

const (
	LogTypeGoWork   LogType = "go_work"
	LogTypeCheckIn  LogType = "check_in"
	LogTypePunch    LogType = "punch"
	LogTypeCheckOut LogType = "check_out"
	LogTypeComplete LogType = "complete"
)

var logTypeRank = map[LogType]int{
	LogTypeGoWork:   1,
	LogTypeCheckIn:  2,
	LogTypePunch:    3,
	LogTypeCheckOut: 4,
	LogTypeComplete: 5,
}

// Valid reports whether t is a known log type.
func (t LogType) Valid() bool {
	_, ok := logTypeRank[t]
	return ok
}

// Rank returns the position of t in the daily progression, 0 for unknown.
func (t LogType) Rank() int {
	return logTypeRank[t]
}

// Log is one timestamped punch event for a calendar date.
type Log struct {
	ID        string
	Date      string // YYYY-MM-DD, the nominal work date
	Type      LogType
	At        time.Time
	CreatedAt time.Time
}

// DaySet indexes a day's logs by type, keeping the first occurrence of each.
type DaySet struct {
	GoWork   *Log
	CheckIn  *Log
	Punch    *Log
	CheckOut *Log
	Complete *Log
}

// CollectDaySet builds a DaySet from an ordered log sequence.
func CollectDaySet(logs []Log) DaySet {
	var set DaySet
	for i := range logs {
		l := &logs[i]
		switch l.Type {
		case LogTypeGoWork:
			if set.GoWork == nil {
				set.GoWork = l
			}
		case LogTypeCheckIn:
			if set.CheckIn == nil {
				set.CheckIn = l
			}
		case LogTypePunch:
			if set.Punch == nil {
				set.Punch = l
			}
		case LogTypeCheckOut:
			if set.CheckOut == nil {
				set.CheckOut = l
			}
		case LogTypeComplete:
			if set.Complete == nil {
				set.Complete = l
			}
		}
	}
	return set
}

// MaxRank returns the highest progression rank present in the set.
func (s DaySet) MaxRank() int {
	rank := 0
	for _, l := range []*Log{s.GoWork, s.CheckIn, s.Punch, s.CheckOut, s.Complete} {
		if l != nil && l.Type.Rank() > rank {
			rank = l.Type.Rank()
		}
	}
	return rank
}
