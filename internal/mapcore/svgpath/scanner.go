package svgpath

import (
	"strconv"

	"prepmap/internal/errors"
)

// scanner tokenizes SVG path data. It understands the compact number syntax
// produced by map exporters, e.g. "l-0.7-0.2" and ".5.5".
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) done() bool {
	sc.skipSeparators()

	return sc.pos >= len(sc.s)
}

// command returns the next command letter if one starts at the cursor.
func (sc *scanner) command() (byte, bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.s) {
		return 0, false
	}
	c := sc.s[sc.pos]
	if isCommand(c) {
		sc.pos++

		return c, true
	}

	return 0, false
}

// hasNumber reports whether a number starts at the cursor.
func (sc *scanner) hasNumber() bool {
	sc.skipSeparators()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]

	return c == '-' || c == '+' || c == '.' || isDigit(c)
}

func (sc *scanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(sc.s) && isDigit(sc.s[i]) {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && isDigit(sc.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, errors.Errorf("expected number at offset %d", start)
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number at offset %d", start)
	}
	sc.pos = i

	return v, nil
}

// flag reads an arc flag, which may be written without a separator ("a5 5 0 011 1").
func (sc *scanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.pos >= len(sc.s) {
		return false, errors.New("expected arc flag at end of data")
	}
	switch sc.s[sc.pos] {
	case '0':
		sc.pos++

		return false, nil
	case '1':
		sc.pos++

		return true, nil
	default:
		return false, errors.Errorf("invalid arc flag at offset %d", sc.pos)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	default:
		return false
	}
}
