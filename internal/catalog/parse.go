package catalog

import (
	"strings"

	"github.com/five82/marquee/internal/poster"
)

// Record is one catalog entry.
type Record struct {
	Title      string
	Plot       string
	PosterPath string
}

// MalformedLine is a non-blank line that could not be turned into a Record.
type MalformedLine struct {
	Number int // 1-based
	Text   string
}

// Parse turns catalog text into records in source order. Blank lines are
// skipped silently; lines without a tab or with an empty title are returned
// as malformed and otherwise ignored.
func Parse(text string, namer poster.Namer) ([]Record, []MalformedLine) {
	var (
		records   []Record
		malformed []MalformedLine
	)
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, ok := parseLine(line, namer)
		if !ok {
			malformed = append(malformed, MalformedLine{Number: i + 1, Text: line})
			continue
		}
		records = append(records, record)
	}
	return records, malformed
}

func parseLine(line string, namer poster.Namer) (Record, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Record{}, false
	}
	title := strings.TrimSpace(fields[0])
	if title == "" {
		return Record{}, false
	}
	// The plot keeps any further tabs.
	plot := strings.TrimSpace(strings.Join(fields[1:], "\t"))
	return Record{
		Title:      title,
		Plot:       plot,
		PosterPath: namer.Path(title),
	}, true
}
