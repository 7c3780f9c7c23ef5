package wire

// MinStringLength is the default minimum run length for ScanPrintable.
const MinStringLength = 3

// ScanPrintable scans blob for maximal runs of printable ASCII bytes
// (0x20-0x7E) of at least minLength bytes, ignoring wire-format framing
// entirely.
//
// This is the fallback recovery path for text the structured scan missed or
// mis-bounded, which happens whenever the tag or length varints around a
// string are corrupted or absent. Runs are deduplicated by exact text match;
// the first occurrence's byte range is kept.
//
// Parameters:
//   - blob: Raw bytes to scan (never mutated)
//   - minLength: Minimum run length; values < 1 fall back to MinStringLength
//
// Returns:
//   - []Candidate: Recovered runs tagged SourceRawScan, in blob order
func ScanPrintable(blob []byte, minLength int) []Candidate {
	if minLength < 1 {
		minLength = MinStringLength
	}

	var (
		candidates []Candidate
		seen       map[string]struct{}
		start      = -1
	)

	flush := func(end int) {
		if start < 0 || end-start < minLength {
			start = -1
			return
		}

		text := string(blob[start:end])
		if _, dup := seen[text]; !dup {
			if seen == nil {
				seen = make(map[string]struct{})
			}
			seen[text] = struct{}{}
			candidates = append(candidates, Candidate{
				Start:  start,
				End:    end,
				Text:   text,
				Source: SourceRawScan,
			})
		}
		start = -1
	}

	for i, b := range blob {
		if b >= 0x20 && b <= 0x7E {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(blob))

	return candidates
}
