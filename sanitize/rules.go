package sanitize

import "regexp"

// MinLength is the floor below which a cleaned string is rejected.
const MinLength = 3

// overStripRatio and overStripMinLength gate the over-stripping rejection:
// if more than half of a string longer than overStripMinLength was removed
// by the preceding rules, the candidate was mostly framing noise rather than
// text with one artifact. The threshold was tuned against observed artifact
// patterns; do not adjust it casually.
const (
	overStripRatio     = 0.5
	overStripMinLength = 10
)

// leadingArtifacts are single characters left at the front of a string by
// the surrounding binary framing.
const leadingArtifacts = "()[]{}$*&|^~`-#%@"

// trailingArtifacts additionally covers truncated quoting.
const trailingArtifacts = leadingArtifacts + `"'`

// asciiPunctuation is the full ASCII punctuation set, stripped from the
// front after the artifact set (field-marker residue).
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// concatDelimiters join two concatenated identifiers when they appear with
// no surrounding whitespace. Natural prose keeps these characters spaced.
const concatDelimiters = `*!#^\$%`

// bundlePrefixes are the recognized reverse-DNS identifier prefixes used by
// the bundle-identifier-specific rules.
var bundlePrefixes = []string{"com.", "is.", "net.", "org."}

var (
	// reBundleID gates the trailing-digit-run rule to bundle-identifier shapes.
	reBundleID = regexp.MustCompile(`^(com|is|net|org)\.`)

	// reTrailingDigitsUpper matches a trailing digit run followed by a single
	// uppercase letter, e.g. "…Home29F".
	reTrailingDigitsUpper = regexp.MustCompile(`[0-9]+[A-Z]$`)

	// reTrailingDigitRun matches a trailing run of two or more digits. A
	// single trailing digit may be a legitimate version suffix ("Drafts4")
	// and is deliberately not matched.
	reTrailingDigitRun = regexp.MustCompile(`[0-9]{2,}$`)

	// reTrailingQuoteDigits and reTrailingQuotePluses match residue from
	// adjacent framing, e.g. `name"2` or `name"+++`.
	reTrailingQuoteDigits = regexp.MustCompile(`["'][0-9]+$`)
	reTrailingQuotePluses = regexp.MustCompile(`["']\++$`)

	// reQuoteFragment matches a double quote followed only by word
	// characters to the end of the string, a truncated-quoting artifact.
	reQuoteFragment = regexp.MustCompile(`"\w*$`)

	// reNonWordOnly matches strings made solely of non-word characters.
	reNonWordOnly = regexp.MustCompile(`^\W+$`)

	// reFramingMarker matches single-char '*' single-char framing markers
	// such as "C*A".
	reFramingMarker = regexp.MustCompile(`^.\*.$`)

	// reBinaryHeader matches the binary property-list header literal.
	reBinaryHeader = regexp.MustCompile(`^bplist[0-9]+`)
)
