package text

import "unicode/utf8"

// ProcessedText is the output of a PreProcessor.
// Processed must stay byte aligned with Original: a pre-processor may only
// substitute characters by characters of the same UTF-8 length, because
// token offsets computed on Processed are used to slice Original.
type ProcessedText struct {
	Processed string
	Original  string
}

// Unprocessed wraps text that no pre-processor rewrote.
func Unprocessed(text string) ProcessedText {
	return ProcessedText{Processed: text, Original: text}
}

// Rewritten reports whether the pre-processor changed the content.
func (p ProcessedText) Rewritten() bool {
	return p.Processed != p.Original
}

// Aligned reports whether every byte offset on a rune boundary of Processed
// is also a rune boundary of Original.
func (p ProcessedText) Aligned() bool {
	return aligned(p.Processed, p.Original)
}

func aligned(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if a == b {
		return true
	}
	for i := 0; i < len(a); i++ {
		if utf8.RuneStart(a[i]) != utf8.RuneStart(b[i]) {
			return false
		}
	}
	return true
}
