package qualifier

import (
	"strconv"
	"strings"

	"github.com/npillmayer/arithm"
)

// Matrix is a font transformation matrix: scale terms a, b, c, d followed
// by the offsets e and f. On the wire the scale terms are 16.16 fixed
// point integers and the offsets are in 1/1000 em; decoded values are
// plain floats.
type Matrix [6]float64

// Identity is the do-nothing transformation.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

const (
	fixedScale  = 65536 // 16.16 fixed point
	milliEmUnit = 1000  // offsets travel in em-thousandths
)

// Apply transforms a point, given in em units, by m.
func (m Matrix) Apply(p arithm.Pair) arithm.Pair {
	x := real(complex128(p))
	y := imag(complex128(p))
	return arithm.P(m[0]*x+m[2]*y+m[4], m[1]*x+m[3]*y+m[5])
}

// IsIdentity is true for a matrix without any effect.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

func (m Matrix) String() string {
	return "[" + strings.TrimRight(m.encode(), " ") + "]"
}

// parseMatrix decodes the payload of a TagMatrix qualifier: six decimal
// integers separated by single spaces. The PRM states 'Each number -
// including the last one - must be followed by a space.'. Classic
// FontManager does not enforce the final one, so the trailing space is
// only required with needTrailingSpace set.
func parseMatrix(field string, needTrailingSpace bool) (Matrix, error) {
	var m Matrix
	s := strings.TrimLeft(field, " ")
	parts := strings.Split(s, " ")
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	} else if needTrailingSpace {
		return m, errMalformed("matrix without trailing space in %q", field)
	}
	if len(parts) != 6 {
		return m, errMalformed("matrix with %d components in %q", len(parts), field)
	}
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return m, errMalformed("matrix component %q is not an integer", p)
		}
		if v >= 1<<31 || v <= -(1<<31) {
			return m, errMalformed("matrix component %d out of range in %q", v, field)
		}
		if i < 4 {
			m[i] = float64(v) / fixedScale
		} else {
			m[i] = float64(v) / milliEmUnit
		}
	}
	return m, nil
}

// encode re-creates the wire form of m. The trailing space is always
// emitted, as the generated string may end up in a document used on a
// system which conforms to the PRM.
func (m Matrix) encode() string {
	var sb strings.Builder
	for i, v := range m {
		scale := fixedScale
		if i >= 4 {
			scale = milliEmUnit
		}
		sb.WriteString(strconv.Itoa(int(v * float64(scale))))
		sb.WriteByte(' ')
	}
	return sb.String()
}
