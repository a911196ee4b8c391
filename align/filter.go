// Package align filters aligned sequencing reads by SAM flag and mapping
// quality. It does not parse alignments itself: anything exposing a flag
// bitfield and a mapping quality can be filtered.
package align

import "log"

// Segment is the view of an aligned read this package needs.
type Segment interface {
	// Flag is the SAM FLAG bitfield.
	Flag() int
	// MappingQuality is the aligner's confidence in the placement.
	MappingQuality() int
}

// Filter returns the segments that meet the quality threshold, match at
// least one include flag exactly, and share no bit with any exclude flag.
// Order is preserved and segments are not copied or mutated. With no
// include flags nothing is retained; with no exclude flags nothing is
// dropped on that account. The verbose flag only controls logging.
//
// You probably want includeFlags of [83, 99, 147, 163] and excludeFlags
// of [4, 8]: flags 83, 99, 147 and 163 are the properly paired and mapped
// configurations, flag 4 means the read is unmapped and flag 8 means its
// mate is.
func Filter[S Segment](segments []S, includeFlags, excludeFlags []int, quality int, verbose bool) []S {
	kept := make([]S, 0, len(segments))
	for _, segment := range segments {
		if Keep(segment, includeFlags, excludeFlags, quality) {
			kept = append(kept, segment)
		}
	}
	if verbose {
		log.Printf("kept %d of %d aligned segments (quality >= %d, include %v, exclude %v)",
			len(kept), len(segments), quality, includeFlags, excludeFlags)
	}
	return kept
}

// Keep reports whether a single segment satisfies the filter criteria.
func Keep(segment Segment, includeFlags, excludeFlags []int, quality int) bool {
	if segment.MappingQuality() < quality {
		return false
	}
	flag := segment.Flag()
	included := false
	for _, f := range includeFlags {
		// Exact submask match: every bit of f must be set, not merely
		// some overlapping bit.
		if flag&f == f {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, f := range excludeFlags {
		if flag&f != 0 {
			return false
		}
	}
	return true
}
