package internal

import "strconv"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IndexToNumber converts a zero-based row index into the 1-based row number used by A1 notation.
func IndexToNumber(index int64) int64 {
	return index + 1
}

// IndexToLetter converts a zero-based column index into its column label (A, B, ... Z, AA, AB, ...).
func IndexToLetter(index int64) string {
	base := int64(len(alphabet))
	out := ""
	for {
		remainder := index % base
		index = index / base
		out = string(alphabet[remainder]) + out
		if index <= 0 {
			break
		} else {
			// labels have no zero digit, so every higher place is shifted down by one
			index--
		}
	}
	return out
}

// IndexToLetterNumber renders the zero-based (row, column) pair as an A1 reference such as "AA10".
func IndexToLetterNumber(rowIndex, columnIndex int64) string {
	return IndexToLetter(columnIndex) + strconv.FormatInt(IndexToNumber(rowIndex), 10)
}
