// file: internals/helpers/indexnum/indexnum.go
package indexnum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Index numbers look like "CS/22/001"; the trailing digits decide seating range.
var trailingDigits = regexp.MustCompile(`(\d+)$`)

// ParseSuffix extracts the trailing numeric suffix of a student index number.
func ParseSuffix(indexNumber string) (int, error) {
	s := strings.TrimSpace(indexNumber)
	if s == "" {
		return 0, fmt.Errorf("indexnum: empty index number")
	}
	m := trailingDigits.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("indexnum: %q has no numeric suffix", indexNumber)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("indexnum: %q suffix out of range", indexNumber)
	}
	return n, nil
}

// InRange reports whether the index number's suffix falls inside [start, end].
func InRange(indexNumber string, start, end int) (bool, error) {
	n, err := ParseSuffix(indexNumber)
	if err != nil {
		return false, err
	}
	return n >= start && n <= end, nil
}
