package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseISODuration converts an ISO-8601 duration ("PT1H2M3S", "P1DT30S") to
// seconds. YouTube content durations never carry years or months, but weeks
// and days do occur on long live-stream archives.
func ParseISODuration(s string) (float64, error) {
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	var total float64
	var num strings.Builder
	inTime := false
	components := 0

	for i := 1; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == 'T':
			if num.Len() > 0 {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			inTime = true
		case (ch >= '0' && ch <= '9') || ch == '.':
			num.WriteByte(ch)
		default:
			if num.Len() == 0 {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			value, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
			}
			num.Reset()

			var mult float64
			switch ch {
			case 'W':
				mult = 7 * 86400
			case 'D':
				mult = 86400
			case 'H':
				if !inTime {
					return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
				}
				mult = 3600
			case 'M':
				if !inTime {
					return 0, fmt.Errorf("unsupported month designator in %q", s)
				}
				mult = 60
			case 'S':
				if !inTime {
					return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
				}
				mult = 1
			default:
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			total += value * mult
			components++
		}
	}
	if num.Len() > 0 || components == 0 {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	return total, nil
}
