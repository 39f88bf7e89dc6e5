package format

import "strconv"

func strconvFixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func trimNegativeZero(s string) string {
	for _, c := range s {
		if c != '-' && c != '0' && c != '.' {
			return s
		}
	}
	if len(s) > 0 && s[0] == '-' {
		return s[1:]
	}
	return s
}
