package token

// number scans a numeric token at the start of d and returns its
// length together with FloatFlag and ExponentFlag as applicable. An
// optional leading minus is handled by the caller's dispatch but
// accepted here too.
func number(d []byte) (int, Flags, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, 0, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return 0, 0, ErrNumberLeadingZero
	}
	i += digits
	var flags Flags
	if f := fract(d[i:]); f > 0 {
		flags |= FloatFlag
		i += f
	} else if i < len(d) && d[i] == '.' {
		return 0, 0, ErrNumber
	}
	if e := exp(d[i:]); e > 0 {
		flags |= ExponentFlag
		i += e
	} else if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		return 0, 0, ErrNumber
	}
	return i, flags, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 4627
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
