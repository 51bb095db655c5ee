// Package shortlink maps recipe ids to compact lowercase hex codes and back.
package shortlink

import (
	"errors"
	"strconv"
)

var ErrInvalidCode = errors.New("invalid short link code")

// Encode returns the lowercase base-16 form of id without a prefix.
func Encode(id int64) string {
	return strconv.FormatInt(id, 16)
}

// Decode parses a code produced by Encode. Only canonical codes are accepted:
// lowercase digits, no sign, no leading zeros, value ≥ 1.
func Decode(code string) (int64, error) {
	if code == "" || len(code) > 16 || code[0] == '0' {
		return 0, ErrInvalidCode
	}
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return 0, ErrInvalidCode
		}
	}
	id, err := strconv.ParseInt(code, 16, 64)
	if err != nil {
		return 0, ErrInvalidCode
	}
	return id, nil
}
