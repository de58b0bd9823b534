// Package timeparse turns the timestamp spellings found in volunteer
// time exports into absolute instants. Accepted forms are ISO-8601 and
// a handful of local layouts; local layouts without a zone are resolved
// against a caller-supplied default location.
package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// zoned layouts carry their own offset or zone name.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"Jan 2, 2006 3:04 PM MST",
	"1/2/2006 3:04 PM MST",
}

// local layouts are interpreted in the default location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"2006-01-02",
}

// Parse converts s to an instant. Zone-carrying layouts win; zoneless
// layouts are anchored in def.
func Parse(s string, def *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("timeparse: empty timestamp")
	}
	if def == nil {
		def = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, def); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timeparse: unparseable timestamp %q", s)
}

// North-American civil zone abbreviations seen in volunteer notes.
// Winter/summer pairs map to the same IANA zone; time.Date resolves the
// actual offset for the anchored calendar date.
var abbrevZones = map[string]string{
	"ET": "America/New_York", "EST": "America/New_York", "EDT": "America/New_York",
	"CT": "America/Chicago", "CST": "America/Chicago", "CDT": "America/Chicago",
	"MT": "America/Denver", "MST": "America/Denver", "MDT": "America/Denver",
	"PT": "America/Los_Angeles", "PST": "America/Los_Angeles", "PDT": "America/Los_Angeles",
	"AKT": "America/Anchorage", "AKST": "America/Anchorage", "AKDT": "America/Anchorage",
	"HT": "Pacific/Honolulu", "HST": "Pacific/Honolulu",
	"UTC": "UTC", "GMT": "UTC", "Z": "UTC",
}

// Location resolves a timezone abbreviation to an IANA location.
// explicit is false when the abbreviation is unknown (or empty) and the
// default location was substituted; such times should be flagged for
// audit rather than silently trusted.
func Location(abbrev string, def *time.Location) (loc *time.Location, explicit bool) {
	if def == nil {
		def = time.UTC
	}
	name, ok := abbrevZones[strings.ToUpper(strings.TrimSpace(abbrev))]
	if !ok {
		return def, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return def, false
	}
	return loc, true
}
