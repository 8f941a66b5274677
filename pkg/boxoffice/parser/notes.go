package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

const noteSeparator = " - "

// attributionPattern matches "<Film> (<Distributor>)". The distributor may
// be empty or contain parentheses.
var attributionPattern = regexp.MustCompile(`^(.*?) \((.*)\)$`)

// filmOf returns the film name of an attribution. The distributor is the
// balanced parenthetical group that closes the attribution, so
// "Nosferatu (1922) (BFI)" yields "Nosferatu (1922)".
func filmOf(attribution string) (string, bool) {
	m := attributionPattern.FindStringSubmatch(attribution)
	if m == nil {
		return "", false
	}
	depth := 0
	for i := len(attribution) - 1; i > 0; i-- {
		switch attribution[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				if attribution[i-1] == ' ' {
					return attribution[:i-1], true
				}
				return m[1], true
			}
		}
	}
	return m[1], true
}

// ParseNote splits one note line into the film name and the note body.
func ParseNote(line string) (film, body string, err error) {
	attribution, body, ok := strings.Cut(line, noteSeparator)
	if !ok {
		return "", "", &NoteFormatError{Line: line, Row: -1, Reason: `missing " - " separator`}
	}
	film, ok = filmOf(attribution)
	if !ok {
		return "", "", &NoteFormatError{Line: line, Row: -1, Reason: `attribution is not "<Film> (<Distributor>)"`}
	}
	return film, body, nil
}

// ParseNotes aggregates note lines per film. Repeated films have their note
// bodies joined with a newline in line order.
func ParseNotes(lines []string) (models.Notes, error) {
	var notes models.Notes
	for _, line := range lines {
		film, body, err := ParseNote(line)
		if err != nil {
			return models.Notes{}, err
		}
		notes.Add(film, body)
	}
	return notes, nil
}
