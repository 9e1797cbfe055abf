package dto

import "strings"

// blankToNil trims optional text and maps empty values to nil.
func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}
