package models

// Note is the accumulated note text of one film.
type Note struct {
	Film string `json:"film" yaml:"film"`
	Text string `json:"notes" yaml:"notes"`
}

// Notes maps film names to note text and remembers first-encounter order.
// The zero value is ready to use.
type Notes struct {
	entries []Note
	index   map[string]int
}

// Add records text for film. The first note of a film creates its entry;
// later notes are appended after a newline.
func (n *Notes) Add(film, text string) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[film]; ok {
		n.entries[i].Text += "\n" + text
		return
	}
	n.index[film] = len(n.entries)
	n.entries = append(n.entries, Note{Film: film, Text: text})
}

// Get returns the note text of film.
func (n Notes) Get(film string) (string, bool) {
	i, ok := n.index[film]
	if !ok {
		return "", false
	}
	return n.entries[i].Text, true
}

// Len returns the number of films with notes.
func (n Notes) Len() int {
	return len(n.entries)
}

// Entries returns the notes in first-encounter order.
func (n Notes) Entries() []Note {
	return append([]Note(nil), n.entries...)
}

// Table returns the notes as a two column Film/Notes table.
func (n Notes) Table() Table {
	rows := make([][]any, len(n.entries))
	for i, e := range n.entries {
		rows[i] = []any{e.Film, e.Text}
	}
	return NewTable([]string{ColumnFilm, ColumnNotes}, rows)
}
