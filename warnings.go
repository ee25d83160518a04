package pagediff

import "strings"

// WarningCode identifies a class of non-fatal comparison issue.
type WarningCode int

const (
	// WarnImageOnlyPair flags a matched page pair where both pages have
	// no extractable text. The pair aligns (two empty texts are
	// identical) but text comparison cannot see any visual differences.
	WarnImageOnlyPair WarningCode = iota

	// WarnNoWordData flags a matched page pair whose page texts differ
	// but for which no word lists were supplied on either side, so no
	// word-level highlights could be produced.
	WarnNoWordData
)

// Warning describes a non-fatal issue encountered during a comparison.
// Warnings indicate that comparison succeeded but results may be
// incomplete, for example a scanned page with no text layer.
type Warning struct {
	Code    WarningCode
	Message string
}

// FormatWarnings formats a list of warnings as a single string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}
	return strings.Join(messages, "\n")
}
