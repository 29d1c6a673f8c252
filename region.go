package intersecter

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxPos is the largest coordinate a PosType can hold.
const maxPos = math.MaxInt32

// Region addresses a chromosome span in query flags and debug output, with
// 0-based half-open coordinates.
type Region struct {
	Chrom string
	Start PosType
	End   PosType
}

// ParseRegion parses a region string of one of the forms
//   [chrom]:[1-based first pos]-[last pos]
//   [chrom]:[1-based pos]
//   [chrom]
// returning a chromosome name and 0-based interval boundaries.  The span
// [0, maxPos - 1] is returned when there is no positional restriction.
func ParseRegion(region string) (result Region, err error) {
	if len(region) == 0 {
		err = errors.New("intersecter.ParseRegion: empty region string")
		return
	}
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		result.Chrom = region
		result.Start = 0
		result.End = maxPos - 1
		return
	}
	if colonPos == 0 {
		err = errors.New("intersecter.ParseRegion: empty chromosome name")
		return
	}
	result.Chrom = region[0:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int
		if pos1, err = strconv.Atoi(rangeStr); err != nil {
			err = errors.Wrap(err, "intersecter.ParseRegion")
			return
		}
		if pos1 <= 0 {
			err = errors.Errorf("intersecter.ParseRegion: position %v in region string out of range", rangeStr)
			return
		}
		result.Start = PosType(pos1 - 1)
		result.End = PosType(pos1)
		return
	}
	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	var start1 int
	if start1, err = strconv.Atoi(start1Str); err != nil {
		err = errors.Wrap(err, "intersecter.ParseRegion")
		return
	}
	if start1 <= 0 {
		err = errors.Errorf("intersecter.ParseRegion: position %v in region string out of range", start1Str)
		return
	}
	var end0 int
	if end0, err = strconv.Atoi(endStr); err != nil {
		err = errors.Wrap(err, "intersecter.ParseRegion")
		return
	}
	if end0 <= start1 || end0 >= maxPos {
		err = errors.Errorf("intersecter.ParseRegion: invalid range string %v", rangeStr)
		return
	}
	result.Start = PosType(start1 - 1)
	result.End = PosType(end0)
	return
}
