package token

// wsTable marks the four whitespace bytes insignificant between tokens.
var wsTable = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\r': true,
}

func IsSpace(c byte) bool {
	return wsTable[c]
}

// escTable marks the bytes allowed after a backslash in a quoted
// string. 'u' additionally requires four hex digits.
var escTable = [128]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	'b':  true,
	'f':  true,
	'n':  true,
	'r':  true,
	't':  true,
	'u':  true,
}
