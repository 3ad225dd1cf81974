package json5

// Structural and whitespace bytes recognized by the tokenizer's main loop.
const (
	ByteOpenCurly   = '{'
	ByteCloseCurly  = '}'
	ByteOpenSquare  = '['
	ByteCloseSquare = ']'
	ByteColon       = ':'
	ByteComma       = ','
	ByteDoubleQuote = '"'
	ByteSingleQuote = '\''
	ByteBackslash   = '\\'
	ByteSlash       = '/'
	ByteSpace       = ' '
	ByteTab         = '\t'
	ByteCR          = '\r'
	ByteLF          = '\n'
	BytePlus        = '+'
	ByteMinus       = '-'
	ByteDot         = '.'
	ByteZero        = '0'
)

// Literal spans recognized by the primitive-value classifier. true/false use
// a 4-byte prefix compare rather than an exact-length match, matching the
// fourcc-style compare the tokenizer this package is based on used for all
// three literals; null keeps an exact-length compare per this package's own
// tightening of that behavior (see the classifyValue doc comment).
const (
	literalNull        = "null"
	literalTruePrefix  = "true"
	literalFalsePrefix = "fals"
)

// FNV-1a 32-bit constants, used for key hashing.
const (
	fnvOffset32 uint32 = 0x811c9dc5
	fnvPrime32  uint32 = 0x01000193
)
