package sanitize

import (
	"strings"

	"github.com/google/uuid"
)

// rule is one step of the pipeline. It receives the original input (for
// rules that measure cumulative loss) and the current text, and returns the
// transformed text or ok=false to reject the candidate and end the pipeline.
type rule struct {
	name  string
	apply func(original, text string) (out string, ok bool)
}

// pipeline lists the rules in their mandatory order. See the package
// documentation for why the order matters.
var pipeline = []rule{
	{"leading-digit", stripLeadingDigit},
	{"leading-artifacts", stripLeadingArtifacts},
	{"leading-punctuation", stripLeadingPunctuation},
	{"bundle-prefix-letter", stripBundlePrefixLetter},
	{"trailing-artifacts", stripTrailingArtifacts},
	{"trailing-quote-runs", stripTrailingQuoteRuns},
	{"bundle-digit-suffix", stripBundleDigitSuffix},
	{"structural-reject", rejectStructural},
	{"over-strip-reject", rejectOverStripped},
	{"concat-split", splitConcatenated},
	{"length-floor", rejectBelowFloor},
}

// Clean runs text through the repair pipeline.
//
// The result is either a cleaned string of at least MinLength characters, or
// a rejection: there is no third state. Already-clean strings pass through
// unchanged, so Clean(Clean(s)) == Clean(s) for accepted output that no rule
// touched. Output that a rule did rewrite is not guaranteed stable: a rule
// can expose an artifact that only an earlier rule handles ("$1abc" cleans
// to "1abc", which re-cleans to "abc"), and the pipeline runs once, in
// order, per call.
//
// Parameters:
//   - text: Candidate string recovered from a blob
//
// Returns:
//   - string: Cleaned text ("" when rejected)
//   - bool: false if the candidate was rejected as framing noise
func Clean(text string) (string, bool) {
	original := text
	for _, r := range pipeline {
		out, ok := r.apply(original, text)
		if !ok {
			return "", false
		}
		text = out
	}

	return text, true
}

// uuidLike reports whether text has the shape of a UUID: either an exactly
// valid UUID, or at least 3 hyphens and length >= 36. The loose shape test
// protects near-UUIDs that carry adjacent artifacts.
func uuidLike(text string) bool {
	if uuid.Validate(text) == nil {
		return true
	}

	return len(text) >= 36 && strings.Count(text, "-") >= 3
}

// stripLeadingDigit removes a single leading digit left by a length prefix.
// A lone digit followed by a non-digit is an artifact; a digit run is kept
// (it may be a real number). UUID-shaped strings are protected.
func stripLeadingDigit(_, text string) (string, bool) {
	if len(text) > 3 && isDigit(text[0]) && !isDigit(text[1]) && !uuidLike(text) {
		return text[1:], true
	}

	return text, true
}

func stripLeadingArtifacts(_, text string) (string, bool) {
	return strings.TrimLeft(text, leadingArtifacts), true
}

func stripLeadingPunctuation(_, text string) (string, bool) {
	return strings.TrimLeft(text, asciiPunctuation), true
}

// stripBundlePrefixLetter removes a stray uppercase letter fused onto a
// reverse-DNS identifier, e.g. "Xcom.apple.Home" -> "com.apple.Home".
func stripBundlePrefixLetter(_, text string) (string, bool) {
	if len(text) < 2 || !isUpper(text[0]) || !isLower(text[1]) {
		return text, true
	}

	rest := text[1:]
	for _, prefix := range bundlePrefixes {
		if strings.HasPrefix(rest, prefix) {
			return rest, true
		}
	}

	return text, true
}

func stripTrailingArtifacts(_, text string) (string, bool) {
	return strings.TrimRight(text, trailingArtifacts), true
}

func stripTrailingQuoteRuns(_, text string) (string, bool) {
	text = reTrailingQuoteDigits.ReplaceAllString(text, "")
	text = reTrailingQuotePluses.ReplaceAllString(text, "")

	return text, true
}

// stripBundleDigitSuffix removes trailing digit runs from bundle-identifier
// shapes only. A single trailing digit is preserved: "com.apple.Notes2" is a
// legitimate identifier, "com.apple.Home29" is an identifier plus residue.
func stripBundleDigitSuffix(_, text string) (string, bool) {
	if !reBundleID.MatchString(text) {
		return text, true
	}

	text = reTrailingDigitsUpper.ReplaceAllString(text, "")
	text = reTrailingDigitRun.ReplaceAllString(text, "")

	return text, true
}

// rejectStructural rejects strings whose overall shape marks them as framing
// residue rather than text with artifacts.
func rejectStructural(_, text string) (string, bool) {
	if digitsAndQuotesOnly(text) {
		return "", false
	}
	if strings.HasPrefix(text, `"`) || strings.HasPrefix(text, "'") {
		return "", false
	}
	if reQuoteFragment.MatchString(text) {
		return "", false
	}
	if reNonWordOnly.MatchString(text) {
		return "", false
	}
	if reFramingMarker.MatchString(text) {
		return "", false
	}
	if reBinaryHeader.MatchString(text) {
		return "", false
	}

	return text, true
}

// rejectOverStripped rejects candidates that lost more than half of their
// original length to the preceding rules: that much removal indicates the
// string was mostly noise, not text with one artifact.
func rejectOverStripped(original, text string) (string, bool) {
	if len(original) <= overStripMinLength {
		return text, true
	}
	if float64(len(original)-len(text)) > float64(len(original))*overStripRatio {
		return "", false
	}

	return text, true
}

// splitConcatenated truncates at the first delimiter that fuses two
// identifiers with no surrounding whitespace. Spaced delimiters in natural
// prose ("soup, $3, $8") are left alone.
func splitConcatenated(_, text string) (string, bool) {
	for i := 1; i+1 < len(text); i++ {
		if !strings.ContainsRune(concatDelimiters, rune(text[i])) {
			continue
		}
		if isIdentChar(text[i-1]) && isIdentChar(text[i+1]) {
			return text[:i], true
		}
	}

	return text, true
}

func rejectBelowFloor(_, text string) (string, bool) {
	if len(text) < MinLength {
		return "", false
	}

	return text, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// isIdentChar reports whether b can be part of an identifier fused around a
// concatenation delimiter.
func isIdentChar(b byte) bool {
	return isDigit(b) || isUpper(b) || isLower(b) || b == '_' || b == '.'
}

// digitsAndQuotesOnly reports whether text consists solely of digits and
// quote characters (length-prefix residue, possibly fused to a truncated
// quote). The earlier trailing rules may have already removed the quote, so
// a bare digit run counts too.
func digitsAndQuotesOnly(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) && text[i] != '"' && text[i] != '\'' {
			return false
		}
	}

	return true
}
