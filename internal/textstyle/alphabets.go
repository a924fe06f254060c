package textstyle

// Offsets into the Mathematical Alphanumeric Symbols block (U+1D400..U+1D7FF)
const (
	boldUpper   = 0x1D400
	boldLower   = 0x1D41A
	boldDigit   = 0x1D7CE
	boldGreekUp = 0x1D6A8
	boldGreekLo = 0x1D6C2

	italicUpper   = 0x1D434
	italicLower   = 0x1D44E
	italicGreekUp = 0x1D6E2
	italicGreekLo = 0x1D6FC

	boldScriptUpper = 0x1D4D0
	boldScriptLower = 0x1D4EA

	// italic small h was encoded before the block existed
	planckConstant = 0x210E
)

// Bold maps Latin letters, digits and Greek letters to their bold form
func Bold(r rune) (rune, bool) {
	if v, ok := latin(r, boldUpper, boldLower); ok {
		return v, true
	}
	if r >= '0' && r <= '9' {
		return boldDigit + (r - '0'), true
	}
	return greek(r, boldGreekUp, boldGreekLo)
}

// Italic maps Latin and Greek letters to their italic form
func Italic(r rune) (rune, bool) {
	if r == 'h' {
		return planckConstant, true
	}
	if v, ok := latin(r, italicUpper, italicLower); ok {
		return v, true
	}
	return greek(r, italicGreekUp, italicGreekLo)
}

// BoldScript maps Latin letters to their bold script form
func BoldScript(r rune) (rune, bool) {
	return latin(r, boldScriptUpper, boldScriptLower)
}

func latin(r, upper, lower rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return upper + (r - 'A'), true
	case r >= 'a' && r <= 'z':
		return lower + (r - 'a'), true
	}
	return 0, false
}

// greek covers Α..Ω (minus the unassigned U+03A2) and α..ω including final sigma.
// The math block keeps the same layout, with U+03A2's slot holding the theta symbol.
func greek(r, upper, lower rune) (rune, bool) {
	switch {
	case r >= 'Α' && r <= 'Ω' && r != 0x03A2:
		return upper + (r - 'Α'), true
	case r >= 'α' && r <= 'ω':
		return lower + (r - 'α'), true
	}
	return 0, false
}
