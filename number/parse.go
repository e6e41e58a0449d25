package number

// Literal is a lexed decimal literal: an optional minus sign, a run of digits
// and, after a decimal point, a second run of digits.
type Literal struct {
	Negative bool
	Integer  string
	Fraction string
	Point    bool
}

// Lex splits text into the parts of a literal. Runs of digits may not be
// empty and no other character than one leading '-' and one '.' is accepted.
func Lex(text string) (lit Literal, err error) {
	s := text
	if len(s) > 0 && s[0] == '-' {
		lit.Negative = true
		s = s[1:]
	}

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !lit.Point:
			lit.Point = true
			lit.Integer = s[:i]
			start = i + 1
		default:
			return Literal{}, Error.New("%w: %q at %d in %q", ErrInvalidCharacter, c, i+len(text)-len(s), text)
		}
	}

	if lit.Point {
		lit.Fraction = s[start:]
	} else {
		lit.Integer = s
	}

	switch {
	case lit.Integer == "":
		return Literal{}, Error.New("%w: missing digits in %q", ErrInvalidCharacter, text)
	case lit.Point && lit.Fraction == "":
		return Literal{}, Error.New("%w: missing fraction digits in %q", ErrInvalidCharacter, text)
	}

	return lit, nil
}

// fromRun builds a number from a run of ASCII digits, most significant first,
// whose last digit is at power pos.
func fromRun(kind Kind, run string, pos int64, negative bool) (*Number, error) {
	digits := make([]uint8, 0, len(run))
	for i := len(run) - 1; i >= 0; i-- {
		digits = append(digits, run[i]-'0')
	}

	return build(kind, digits, pos, negative)
}

// IntegerOf returns the Integer of a run of ASCII digits.
func IntegerOf(run string, negative bool) (n *Number, err error) {
	defer Error.WrapP(&err)

	return fromRun(Integer, run, 0, negative)
}

// DecimalOf returns the Decimal whose digits after the point are run.
func DecimalOf(run string, negative bool) (n *Number, err error) {
	defer Error.WrapP(&err)

	return fromRun(Decimal, run, -int64(len(run)), negative)
}

// Parse reads a literal. Without a decimal point the result is an Integer.
// With one the result is a Decimal and the digits before the point must all be
// zero.
//
//  Parse("-1200")  // Integer 12E2, negative
//  Parse("0.050")  // Decimal 5E-2
//  Parse("1.5")    // ErrOutOfRange
//
func Parse(text string) (n *Number, err error) {
	defer Error.WrapP(&err)

	lit, err := Lex(text)
	if err != nil {
		return nil, err
	}

	if !lit.Point {
		return fromRun(Integer, lit.Integer, 0, lit.Negative)
	}

	for i := 0; i < len(lit.Integer); i++ {
		if lit.Integer[i] != '0' {
			return nil, Error.New("%w: %q is not below one", ErrOutOfRange, text)
		}
	}

	return fromRun(Decimal, lit.Fraction, -int64(len(lit.Fraction)), lit.Negative)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return n
}
