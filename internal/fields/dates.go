package fields

import (
	"regexp"
	"strings"
	"time"
)

// DateOutputLayout is the canonical stored form for all date fields.
const DateOutputLayout = "2006-01-02"

// Layouts are tried in order; the first that parses wins. Day-first
// forms come before month-first so ambiguous dates resolve day-first.
var dateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2-1-06",
	"1/2/2006",
	"1-2-2006",
	"2.1.2006",
	"060102",
}

var twoDigitYearLayouts = map[string]bool{
	"2/1/06": true,
	"2-1-06": true,
	"060102": true,
}

// strip anything that is not part of a date token before parsing
var reDateClean = regexp.MustCompile(`[^0-9A-Za-z\s/.-]`)

// candidate date-looking runs inside free text
var reDateCandidate = regexp.MustCompile(
	`\b\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\b` +
		`|\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b` +
		`|\b\d{6}\b`)

// ParseDate normalizes a raw date string to DateOutputLayout. Returns
// ok=false when no layout matches.
func ParseDate(raw string) (string, bool) {
	t, ok := parseDateTime(raw, time.Now())
	if !ok {
		return "", false
	}
	return t.Format(DateOutputLayout), true
}

func parseDateTime(raw string, now time.Time) (time.Time, bool) {
	cleaned := strings.TrimSpace(reDateClean.ReplaceAllString(raw, ""))
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		if twoDigitYearLayouts[layout] && t.Year() > now.Year() {
			// a two-digit year past the current one means last century
			t = t.AddDate(-100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// dateFromCapture normalizes a captured line remainder, falling back
// to the first parseable date-looking run inside it.
func dateFromCapture(s string) (string, bool) {
	if v, ok := ParseDate(s); ok {
		return v, true
	}
	for _, candidate := range reDateCandidate.FindAllString(s, -1) {
		if v, ok := ParseDate(candidate); ok {
			return v, true
		}
	}
	return "", false
}

// dateSearchRadius bounds how far a date may sit from its label.
const dateSearchRadius = 150

// findDateNear scans the whole text for date-looking runs and pairs
// each, in text order, with the nearest label occurrence on either
// side. The first pair within the radius that parses wins.
func findDateNear(text string, labels *regexp.Regexp) (string, bool) {
	labelLocs := labels.FindAllStringIndex(text, -1)
	if len(labelLocs) == 0 {
		return "", false
	}
	for _, c := range reDateCandidate.FindAllStringIndex(text, -1) {
		if !withinRadius(c, labelLocs) {
			continue
		}
		if normalized, ok := ParseDate(text[c[0]:c[1]]); ok {
			return normalized, true
		}
	}
	return "", false
}

// withinRadius reports whether the candidate span sits within the
// search radius of any label span, before or after it.
func withinRadius(span []int, labels [][]int) bool {
	for _, l := range labels {
		var dist int
		switch {
		case span[0] >= l[1]:
			dist = span[0] - l[1]
		case span[1] <= l[0]:
			dist = l[0] - span[1]
		}
		if dist < dateSearchRadius {
			return true
		}
	}
	return false
}
