package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// excelEpochOffsetDays is the number of days between the spreadsheet
// 1899-12-30 epoch and 1970-01-01. Subtracting it converts a 1900-system
// serial date to Unix days, reproducing the usual off-by-one spreadsheet
// date arithmetic.
const excelEpochOffsetDays = 25569

// CoerceDate normalizes a heterogeneous cell value into a UTC time, or nil
// when the value carries no recoverable date. The rules are tried in order:
//
//  1. time.Time values pass through unchanged.
//  2. Numeric values (or numeric-looking strings, which is what a raw-value
//     worksheet read yields for date cells) are treated as 1900-system
//     spreadsheet serial dates. No bounds check: an absurd serial produces
//     an absurd date, not a failure.
//  3. Other strings go through general date parsing.
//  4. Anything else (nil, bool, structs) yields nil.
//
// CoerceDate never fails; a cell that cannot be read as a date is simply
// absent downstream.
func CoerceDate(value any) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return &v
	case *time.Time:
		return v
	case float64:
		return serialToTime(v)
	case float32:
		return serialToTime(float64(v))
	case int:
		return serialToTime(float64(v))
	case int64:
		return serialToTime(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToTime(serial)
		}
		parsed, err := dateparse.ParseAny(s)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// serialToTime converts a spreadsheet serial date to a UTC time with
// millisecond precision.
func serialToTime(serial float64) *time.Time {
	millis := int64(math.Round((serial - excelEpochOffsetDays) * 86400 * 1000))
	t := time.UnixMilli(millis).UTC()
	return &t
}
