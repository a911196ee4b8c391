// Package bed reads features from BED files and computes the extended
// region around each one, the window scored by downstream ATAC-seq tools.
package bed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Map BED columns to their positions. Field names follow
// https://genome.ucsc.edu/FAQ/FAQformat.html
const (
	Reference int = iota // chrom
	Start                // chromStart
	End                  // chromEnd
	Name
	Score
	Strand
	ThickStart
	ThickEnd
	Color // itemRgb
	BlockCount
	BlockSizes
	BlockStarts

	numColumns
)

// Row holds the raw fields of one BED line, indexed by the column
// constants above. Rows shorter than numColumns simply lack the trailing
// optional fields.
type Row []string

// Feature is a BED feature plus a fixed extended region.
//
// FeatureStart and FeatureEnd are the usual zero-based half-open BED
// coordinates. The drawing-hint fields (ThickStart, ThickEnd, BlockCount,
// BlockSizes, BlockStarts) are accepted when parsing input files but kept
// as raw strings; nothing here interprets them.
type Feature struct {
	Reference    string
	FeatureStart int
	FeatureEnd   int
	Name         string
	Score        float64
	Strand       string
	ThickStart   string
	ThickEnd     string
	Color        string
	BlockCount   string
	BlockSizes   string
	BlockStarts  string

	// Extension is the number of bases added on each side of the
	// feature; ReverseShift moves the region of a reverse-strand feature
	// further upstream.
	Extension    int
	ReverseShift int

	// Derived at construction and never recomputed.
	IsReverse   bool
	RegionStart int
	RegionEnd   int
}

// NewFeature builds a Feature from a parsed BED row. Start and end must
// parse as integers and score, when present, as a float; no other
// validation is performed, so out-of-order or negative coordinates pass
// through untouched. Missing trailing columns take their defaults (score
// 0, color "0,0,0", everything else empty).
func NewFeature(row Row, extension, reverseShift int) (*Feature, error) {
	if len(row) <= End {
		return nil, fmt.Errorf("bed: row has %d fields, want at least %d", len(row), End+1)
	}

	start, err := strconv.Atoi(row[Start])
	if err != nil {
		return nil, pfx.Err(err)
	}
	end, err := strconv.Atoi(row[End])
	if err != nil {
		return nil, pfx.Err(err)
	}

	f := &Feature{
		Reference:    row[Reference],
		FeatureStart: start,
		FeatureEnd:   end,
		Color:        "0,0,0",
		Extension:    extension,
		ReverseShift: reverseShift,
	}

	if len(row) > Name {
		f.Name = row[Name]
	}
	if len(row) > Score {
		score, err := strconv.ParseFloat(row[Score], 64)
		if err != nil {
			return nil, pfx.Err(err)
		}
		f.Score = score
	}
	if len(row) > Strand {
		f.Strand = row[Strand]
	}
	if len(row) > ThickStart {
		f.ThickStart = row[ThickStart]
	}
	if len(row) > ThickEnd {
		f.ThickEnd = row[ThickEnd]
	}
	if len(row) > Color {
		f.Color = row[Color]
	}
	if len(row) > BlockCount {
		f.BlockCount = row[BlockCount]
	}
	if len(row) > BlockSizes {
		f.BlockSizes = row[BlockSizes]
	}
	if len(row) > BlockStarts {
		f.BlockStarts = row[BlockStarts]
	}

	f.IsReverse = f.Strand == "-"
	f.RegionStart = f.FeatureStart - extension
	f.RegionEnd = f.FeatureEnd + extension
	if f.IsReverse && reverseShift > 0 {
		f.RegionStart -= reverseShift
		f.RegionEnd -= reverseShift
	}

	return f, nil
}

// String renders the feature tab-separated in the fixed field order, with
// absent fields empty.
func (f *Feature) String() string {
	return strings.Join([]string{
		f.Reference,
		strconv.Itoa(f.FeatureStart),
		strconv.Itoa(f.FeatureEnd),
		f.Name,
		emptyOrFloat(f.Score),
		f.Strand,
		f.ThickStart,
		f.ThickEnd,
		f.Color,
		f.BlockCount,
		f.BlockSizes,
		f.BlockStarts,
		emptyOrInt(f.Extension),
		emptyOrInt(f.ReverseShift),
	}, "\t")
}

func emptyOrFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func emptyOrInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
