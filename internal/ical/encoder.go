// Package ical serializes display events as an iCalendar (RFC 5545)
// document: one all-day VEVENT per event, date-only anchors, and the
// task metadata mapped into standard calendar properties.
package ical

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tasklens/tasklens/internal/display"
)

// ProdID identifies this writer in the calendar header.
const ProdID = "-//tasklens//tasklens//EN"

// dateLayout is the RFC 5545 DATE form; every event is all-day.
const dateLayout = "20060102"

// maxLineOctets is the RFC 5545 content-line length before folding.
const maxLineOctets = 75

// Encode writes events as a single VCALENDAR.
//
// Per-event property mapping:
//
//	UID          resource task id (forecast occurrences share their
//	             source task's UID)
//	SUMMARY      event title
//	DTSTART      event start, only when the task has started
//	DUE          event end
//	PRIORITY     task 1-10 scale mapped to iCal 1-9: clamp(10-p, 1, 9)
//	DESCRIPTION  description, owner, assignees, department, tags,
//	             status and priority label, newline-joined
//	CATEGORIES   trimmed non-empty tags
//	ORGANIZER    only when an owner email exists
//	ATTENDEE     assignees with a non-empty email, REQ-PARTICIPANT
//	RRULE        FREQ=DAILY;INTERVAL=n when the task recurs
func Encode(w io.Writer, events []display.Event) error {
	lw := &lineWriter{w: w}

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + ProdID)
	lw.line("CALSCALE:GREGORIAN")
	for _, ev := range events {
		encodeEvent(lw, ev)
	}
	lw.line("END:VCALENDAR")

	return lw.err
}

func encodeEvent(lw *lineWriter, ev display.Event) {
	res := ev.Resource

	lw.line("BEGIN:VEVENT")
	lw.line("UID:" + escapeText(res.TaskID))
	lw.line("SUMMARY:" + escapeText(ev.Title))
	if res.IsStarted {
		lw.line("DTSTART;VALUE=DATE:" + ev.Start.Format(dateLayout))
	}
	lw.line("DUE;VALUE=DATE:" + ev.End.Format(dateLayout))
	lw.line(fmt.Sprintf("PRIORITY:%d", Priority(res.Priority)))
	lw.line("DESCRIPTION:" + escapeText(description(ev)))

	if cats := cleanTags(res.Tags); len(cats) > 0 {
		escaped := make([]string, len(cats))
		for i, tag := range cats {
			escaped[i] = escapeText(tag)
		}
		lw.line("CATEGORIES:" + strings.Join(escaped, ","))
	}
	if res.Owner != nil && res.Owner.Email != "" {
		lw.line("ORGANIZER" + cnParam(res.Owner.Name) + ":mailto:" + res.Owner.Email)
	}
	for _, a := range res.Assignees {
		if a.Email == "" {
			continue
		}
		lw.line("ATTENDEE;ROLE=REQ-PARTICIPANT" + cnParam(a.Name) + ":mailto:" + a.Email)
	}
	if res.RecurringInterval > 0 {
		lw.line(fmt.Sprintf("RRULE:FREQ=DAILY;INTERVAL=%d", res.RecurringInterval))
	}
	lw.line("END:VEVENT")
}

// Priority maps the task's 1-10 scale (10 highest) onto iCal's 1-9
// scale (1 highest).
func Priority(taskPriority int) int {
	p := 10 - taskPriority
	if p < 1 {
		return 1
	}
	if p > 9 {
		return 9
	}
	return p
}

// PriorityLabel gives the human priority tier for a 1-10 task priority.
func PriorityLabel(taskPriority int) string {
	switch {
	case taskPriority >= 8:
		return "High"
	case taskPriority >= 5:
		return "Medium"
	default:
		return "Low"
	}
}

// description assembles the DESCRIPTION body before text escaping.
func description(ev display.Event) string {
	res := ev.Resource
	var parts []string

	if res.Description != "" {
		parts = append(parts, res.Description)
	}
	if res.Owner != nil {
		if res.Owner.Email != "" {
			parts = append(parts, fmt.Sprintf("Owner: %s <%s>", res.Owner.Name, res.Owner.Email))
		} else {
			parts = append(parts, "Owner: "+res.Owner.Name)
		}
	}
	if len(res.Assignees) > 0 {
		names := make([]string, len(res.Assignees))
		for i, a := range res.Assignees {
			names[i] = a.Name
		}
		parts = append(parts, "Assignees: "+strings.Join(names, ", "))
	}
	if res.Department != "" {
		parts = append(parts, "Department: "+res.Department)
	}
	if tags := cleanTags(res.Tags); len(tags) > 0 {
		hashed := make([]string, len(tags))
		for i, tag := range tags {
			hashed[i] = "#" + tag
		}
		parts = append(parts, strings.Join(hashed, " "))
	}
	parts = append(parts, "Status: "+res.Status.Human())
	parts = append(parts, "Priority: "+PriorityLabel(res.Priority))

	return strings.Join(parts, "\n")
}

// cleanTags drops blank tags and trims the rest.
func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// cnParam renders a CN parameter, quoted when the name needs it.
// Empty names omit the parameter entirely.
func cnParam(name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, ",;:") {
		return `;CN="` + name + `"`
	}
	return ";CN=" + name
}

// escapeText escapes a TEXT property value per RFC 5545 §3.3.11.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// lineWriter emits CRLF-terminated, folded content lines, capturing the
// first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	for i, segment := range foldLine(s) {
		if i > 0 {
			segment = " " + segment
		}
		if _, err := io.WriteString(lw.w, segment+"\r\n"); err != nil {
			lw.err = err
			return
		}
	}
}

// foldLine splits s into segments of at most 75 octets, never inside a
// UTF-8 sequence. Continuation segments reserve one octet for the
// leading fold space.
func foldLine(s string) []string {
	var segments []string
	budget := maxLineOctets
	for len(s) > budget {
		cut := budget
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		segments = append(segments, s[:cut])
		s = s[cut:]
		budget = maxLineOctets - 1
	}
	return append(segments, s)
}
