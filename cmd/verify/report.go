package verify

import (
	"fmt"
	"io"

	"github.com/femnad/zipguard/entity"
	"github.com/femnad/zipguard/internal"
)

// Report holds the findings of checking an archive's entry names against a profile.
type Report struct {
	BackslashEntries  []string
	EntryCount        int
	Missing           []string
	UnmatchedPatterns []string
	UnmatchedPrefixes []string
}

func (r Report) Failed() bool {
	return len(r.Missing) > 0 || len(r.UnmatchedPatterns) > 0 || len(r.UnmatchedPrefixes) > 0 ||
		len(r.BackslashEntries) > 0
}

// WriteDiagnostics writes one block per failed check, listing at most maxListed backslash entries.
func (r Report) WriteDiagnostics(w io.Writer, maxListed int) {
	prefix := internal.ErrorPrefix()
	if maxListed <= 0 {
		maxListed = entity.DefaultMaxListed
	}

	if len(r.Missing) > 0 {
		fmt.Fprintf(w, "%s missing required entries: %q\n", prefix, r.Missing)
	}
	if len(r.UnmatchedPatterns) > 0 {
		fmt.Fprintf(w, "%s no entries match required patterns: %q\n", prefix, r.UnmatchedPatterns)
	}
	if len(r.UnmatchedPrefixes) > 0 {
		fmt.Fprintf(w, "%s no entries under required prefixes: %q\n", prefix, r.UnmatchedPrefixes)
	}
	if len(r.BackslashEntries) > 0 {
		fmt.Fprintf(w, "%s zip contains Windows-style backslash entries:\n", prefix)
		for _, entry := range internal.FirstN(r.BackslashEntries, maxListed) {
			fmt.Fprintf(w, "  - %s\n", entry)
		}
	}
}
