package tally

import (
	"time"

	"github.com/ntari/tally/internal/model"
)

// Report is the stable public result type — internal representations
// may evolve independently without breaking consumers.
type Report struct {
	Volunteers map[string]Volunteer `json:"volunteers"`
	Ranking    []Rank               `json:"ranking"`
	Period     string               `json:"period"`
	Window     Window               `json:"recentWindow"`

	TotalVolunteers  int     `json:"totalVolunteers"`
	ActiveVolunteers int     `json:"activeVolunteers"`
	QualityStandard  float64 `json:"qualityStandard"`

	DataQuality DataQuality `json:"dataQuality"`
	Discarded   []Discarded `json:"discardedSessions,omitempty"`
}

// Volunteer is one canonical identity's aggregates.
type Volunteer struct {
	Name         string    `json:"name"`
	UserID       string    `json:"userId"`
	TotalHours   float64   `json:"totalHours"`
	RecentHours  float64   `json:"recentWindowHours"`
	SessionCount int       `json:"sessionCount"`
	Sessions     []Session `json:"sessions"`
	Filtered     []Session `json:"filteredSessions,omitempty"`
	Flags        []string  `json:"flags,omitempty"`
}

// Session is one reconstructed work interval.
type Session struct {
	Date     string   `json:"date"`
	Start    string   `json:"startTime,omitempty"`
	End      string   `json:"endTime,omitempty"`
	Hours    float64  `json:"duration"`
	Notes    string   `json:"notes,omitempty"`
	Flags    []string `json:"flags,omitempty"`
	Included bool     `json:"included"`
	Reason   string   `json:"reason,omitempty"`
}

// Rank is one row of the recent-activity ranking.
type Rank struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// Window is the trailing recent-activity span, defined by the dataset's
// own maximum timestamp rather than the wall clock.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DataQuality summarizes filtering impact for one run.
type DataQuality struct {
	TotalEntries     int     `json:"totalEntries"`
	ValidSessions    int     `json:"validSessions"`
	FilteredSessions int     `json:"filteredSessions"`
	FilterRule       string  `json:"filterRule"`
	OriginalHours    float64 `json:"originalHours"`
	IncludedHours    float64 `json:"includedHours"`
	FilteredHours    float64 `json:"filteredHours"`
	ReductionPercent float64 `json:"reductionPercent"`
}

// Discarded is one quality-filtered session in the global audit list.
type Discarded struct {
	Volunteer string  `json:"volunteer"`
	Date      string  `json:"date"`
	Hours     float64 `json:"duration"`
	Reason    string  `json:"reason"`
}

// reportFromAnalysis converts the internal Analysis to the public Report.
func reportFromAnalysis(a *model.Analysis) *Report {
	r := &Report{
		Volunteers:       make(map[string]Volunteer, len(a.PerIdentity)),
		Ranking:          make([]Rank, len(a.Ranking)),
		Period:           a.Period,
		Window:           Window{Start: a.Window.Start, End: a.Window.End},
		TotalVolunteers:  a.TotalVolunteers,
		ActiveVolunteers: a.ActiveVolunteers,
		QualityStandard:  a.QualityStandard,
		DataQuality:      DataQuality(a.DataQuality),
	}
	for name, ir := range a.PerIdentity {
		r.Volunteers[name] = Volunteer{
			Name:         ir.Name,
			UserID:       ir.Key,
			TotalHours:   ir.TotalHours,
			RecentHours:  ir.WindowHours,
			SessionCount: ir.SessionCount,
			Sessions:     sessionsFromModel(ir.Sessions),
			Filtered:     sessionsFromModel(ir.Filtered),
			Flags:        flagsToStrings(ir.Flags),
		}
	}
	for i, e := range a.Ranking {
		r.Ranking[i] = Rank{Rank: e.Rank, Name: e.Name, Hours: e.Hours}
	}
	for _, d := range a.Discarded {
		r.Discarded = append(r.Discarded, Discarded{
			Volunteer: d.Volunteer,
			Date:      d.Date,
			Hours:     d.Hours,
			Reason:    d.Reason,
		})
	}
	return r
}

func sessionsFromModel(ss []model.Session) []Session {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Session, len(ss))
	for i, s := range ss {
		out[i] = Session{
			Date:     s.Date,
			Start:    s.StartsAt,
			End:      s.EndsAt,
			Hours:    s.Hours,
			Notes:    s.Notes,
			Flags:    flagsToStrings(s.Flags),
			Included: s.Included,
			Reason:   s.Reason,
		}
	}
	return out
}

func flagsToStrings(fs []model.Flag) []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
