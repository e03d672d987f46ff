package ai

// DeltaKind classifies the result of parsing one streamed fragment. The
// external contract treats everything except DeltaContent as "no text", but
// the kinds stay distinguishable so a caller can separate legitimate
// non-content fragments (keep-alives, role announcements) from fragments
// that failed to decode.
type DeltaKind int

const (
	// DeltaNone means the fragment decoded but carried no text content.
	DeltaNone DeltaKind = iota
	// DeltaContent means the fragment carried a text delta (possibly empty).
	DeltaContent
	// DeltaMalformed means the fragment did not decode. By contract this is
	// swallowed silently and treated like DeltaNone by default consumers.
	DeltaMalformed
)

// Delta is the parse result for a single response fragment.
type Delta struct {
	Kind DeltaKind
	Text string
}

// NoDelta returns the no-content result.
func NoDelta() Delta {
	return Delta{Kind: DeltaNone}
}

// ContentDelta returns a text content result. An empty string is a valid
// content delta.
func ContentDelta(text string) Delta {
	return Delta{Kind: DeltaContent, Text: text}
}

// MalformedDelta returns the decode-failure result.
func MalformedDelta() Delta {
	return Delta{Kind: DeltaMalformed}
}

// HasContent reports whether the delta carries text to emit.
func (d Delta) HasContent() bool {
	return d.Kind == DeltaContent
}
