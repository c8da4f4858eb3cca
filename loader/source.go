package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// rawRow one source row keyed by column name
type rawRow map[string]string

// source reads every row of a trip file. columns are the names found in the file.
type source interface {
	ReadAll() (columns []string, rows []rawRow, err error)
}

// formatValue converts a parquet value to the text representation the CSV files use
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.DateTime)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}
