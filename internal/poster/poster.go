package poster

import (
	"strings"
	"unicode"
)

const (
	// DefaultRoot is the directory poster assets live under.
	DefaultRoot = "movie_posters"
	// DefaultExt is the poster file extension, without the dot.
	DefaultExt = "jpg"
	// DefaultFallback is shown whenever a derived poster cannot be loaded.
	DefaultFallback = "movie_posters/unavailable.jpg"
)

// stripped lists characters removed outright from titles.
const stripped = `'":!?`

// Namer maps free-text titles to poster asset paths.
type Namer struct {
	Root string
	Ext  string
}

// DefaultNamer returns a Namer using DefaultRoot and DefaultExt.
func DefaultNamer() Namer {
	return Namer{Root: DefaultRoot, Ext: DefaultExt}
}

// Derive returns the poster path for title using the default naming policy.
func Derive(title string) string {
	return DefaultNamer().Path(title)
}

// Path returns "<root>/<cleaned-title>.<ext>". It never fails; a title made
// entirely of stripped characters yields an empty file stem.
func (n Namer) Path(title string) string {
	root := strings.TrimRight(strings.TrimSpace(n.Root), "/")
	if root == "" {
		root = DefaultRoot
	}
	ext := strings.TrimPrefix(strings.TrimSpace(n.Ext), ".")
	if ext == "" {
		ext = DefaultExt
	}
	return root + "/" + Clean(title) + "." + ext
}

// Clean applies the file-stem policy: drop quotes, colons, exclamation and
// question marks; collapse runs of whitespace and hyphens into one underscore;
// trim underscores from both ends. Case is preserved.
func Clean(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	inRun := false
	for _, r := range title {
		if strings.ContainsRune(stripped, r) {
			continue
		}
		if unicode.IsSpace(r) || r == '-' {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), "_")
}
