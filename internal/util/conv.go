package util

import (
	"strconv"
)

// MustParseUint 문자열을 uint로 변환한다. 실패하면 0을 반환한다.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
