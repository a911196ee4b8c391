package align

import "github.com/biogo/hts/sam"

// SAMSegment adapts a biogo/hts record to the Segment interface.
type SAMSegment struct {
	Record *sam.Record
}

func (s SAMSegment) Flag() int           { return int(s.Record.Flags) }
func (s SAMSegment) MappingQuality() int { return int(s.Record.MapQ) }

// FilterSAM applies Filter to biogo/hts records, as read from a SAM or
// BAM file.
func FilterSAM(records []*sam.Record, includeFlags, excludeFlags []int, quality int, verbose bool) []*sam.Record {
	segments := make([]SAMSegment, len(records))
	for i, record := range records {
		segments[i] = SAMSegment{record}
	}
	kept := Filter(segments, includeFlags, excludeFlags, quality, verbose)
	out := make([]*sam.Record, len(kept))
	for i, segment := range kept {
		out[i] = segment.Record
	}
	return out
}
