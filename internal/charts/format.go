package charts

import "strconv"

// FormatNumber prints v with at least one decimal, the way the dashboard
// labels percentages (15.0, 12.8, 0.25).
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' {
			return s
		}
	}
	return s + ".0"
}

func round1Label(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
