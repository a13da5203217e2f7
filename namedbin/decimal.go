package namedbin

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/namedbin/namedbin-go/namedbin/internal/apdctx"
)

// Decimal is an arbitrary-precision decimal value. On the wire it is a
// sign byte, a 32-bit exponent, then the coefficient magnitude as a
// size-tagged byte string, each flowing through the ordinary primitive
// channel.
type Decimal struct{ D apd.Decimal }

func DecFromString(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := apdctx.Ctx.SetString(&d, s)
	return Decimal{D: d}, err
}

func DecFromInt64(n int64) Decimal {
	var d apd.Decimal
	d.SetInt64(n)
	return Decimal{D: d}
}

func (d Decimal) String() string { return d.D.String() }

func (d Decimal) Save(ar *OutputArchive) error {
	sign := uint8(0)
	if d.D.Negative {
		sign = 1
	}
	coeff := d.D.Coeff.Bytes()
	return ar.Save(sign, int32(d.D.Exponent), SizeTag(len(coeff)), coeff)
}

func (d *Decimal) Load(ar *InputArchive) error {
	var sign uint8
	var exp int32
	var n SizeTag
	if err := ar.Load(&sign, &exp, &n); err != nil {
		return err
	}
	coeff := make([]byte, n)
	if err := ar.Load(coeff); err != nil {
		return err
	}
	d.D.Coeff.SetBytes(coeff)
	d.D.Exponent = exp
	d.D.Negative = sign == 1
	return nil
}
