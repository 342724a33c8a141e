package poster

import "strings"

// unavailableAlt is the alt text used once the fallback has been substituted.
const unavailableAlt = "Poster not available"

// Image is a poster slot with a one-shot failure handler. The first Fail
// swaps in the fallback and disarms the handler, so a missing fallback can
// never re-trigger a substitution.
type Image struct {
	Src      string
	Alt      string
	fallback string
	armed    bool
}

// NewImage returns an armed image showing src for title.
func NewImage(src, title, fallback string) Image {
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}
	return Image{
		Src:      src,
		Alt:      title + " Poster",
		fallback: fallback,
		armed:    true,
	}
}

// Fail handles a load failure. It reports whether a substitution happened.
func (i *Image) Fail() bool {
	if !i.armed {
		return false
	}
	i.armed = false
	i.Src = i.fallback
	i.Alt = unavailableAlt
	return true
}

// UsingFallback reports whether the fallback has been substituted.
func (i Image) UsingFallback() bool {
	return !i.armed && i.Src == i.fallback && i.fallback != ""
}

// Armed reports whether a failure would still trigger a substitution.
func (i Image) Armed() bool {
	return i.armed
}

// Clear empties the source so a reused slot never flashes stale content.
func (i *Image) Clear() {
	i.Src = ""
	i.Alt = ""
	i.armed = false
}
