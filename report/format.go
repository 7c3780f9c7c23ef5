package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salvagekit/salvage/compress"
)

// fieldValueDisplayLimit truncates long field values in formatted output.
const fieldValueDisplayLimit = 100

// Format renders the report for human-readable display.
//
// Parameters:
//   - indent: Number of leading spaces on every line
//
// Returns:
//   - string: Multi-line formatted report
func (r Report) Format(indent int) string {
	var b strings.Builder
	prefix := strings.Repeat(" ", indent)

	b.WriteString(r.formatHead(prefix))
	r.formatFields(&b, prefix)

	return b.String()
}

// Format renders the analysis for human-readable display, with the likely OS
// versions between the string and field sections.
func (r RequirementsAnalysis) Format(indent int) string {
	var b strings.Builder
	prefix := strings.Repeat(" ", indent)

	b.WriteString(r.formatHead(prefix))

	if len(r.LikelyOSVersions) > 0 {
		fmt.Fprintf(&b, "%sLikely OS Versions:\n", prefix)
		for _, v := range r.LikelyOSVersions {
			fmt.Fprintf(&b, "%s  - iOS/macOS %d\n", prefix, v)
		}
	}

	r.formatFields(&b, prefix)

	return b.String()
}

// Format renders the analysis for human-readable display, with the UTI types
// between the string and field sections.
func (r TypeInstanceAnalysis) Format(indent int) string {
	var b strings.Builder
	prefix := strings.Repeat(" ", indent)

	b.WriteString(r.formatHead(prefix))

	if len(r.UTITypes) > 0 {
		fmt.Fprintf(&b, "%sUTI Types:\n", prefix)
		for _, uti := range r.UTITypes {
			fmt.Fprintf(&b, "%s  - %s\n", prefix, uti)
		}
	}

	r.formatFields(&b, prefix)

	return b.String()
}

func (r Report) formatHead(prefix string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sSize: %d bytes\n", prefix, r.Size)
	if r.Compression != compress.KindNone {
		fmt.Fprintf(&b, "%sCompression: %s\n", prefix, r.Compression)
	}

	if len(r.Strings) > 0 {
		fmt.Fprintf(&b, "%sStrings found:\n", prefix)
		for _, s := range r.Strings {
			fmt.Fprintf(&b, "%s  - %s\n", prefix, s.Clean)
		}
	}

	return b.String()
}

func (r Report) formatFields(b *strings.Builder, prefix string) {
	values := r.FieldValues()
	if len(values) == 0 {
		return
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "%sDecoded Fields:\n", prefix)
	for _, key := range keys {
		value := values[key]
		if text, ok := value.(string); ok && len(text) > fieldValueDisplayLimit {
			value = text[:fieldValueDisplayLimit] + "..."
		}
		fmt.Fprintf(b, "%s  %s: %v\n", prefix, key, value)
	}
}
