package sheets

// ColumnLetter converts a 1-based column index to its A1-notation letters
// using bijective base 26: 1 -> A, 26 -> Z, 27 -> AA, 703 -> AAA.
func ColumnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
