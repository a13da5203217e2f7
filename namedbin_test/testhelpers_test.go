package namedbin_test

import (
	"bytes"
	"testing"

	"github.com/namedbin/namedbin-go/namedbin"
)

type order struct {
	Number string
	Qty    uint32
	Price  namedbin.Decimal
	Tags   []string
}

func (o order) Save(ar *namedbin.OutputArchive) error {
	if err := ar.Save(
		namedbin.Named{Name: "number", Value: o.Number},
		namedbin.Named{Name: "qty", Value: o.Qty},
		namedbin.Named{Name: "price", Value: o.Price},
		namedbin.Named{Name: "tags", Value: namedbin.SizeTag(len(o.Tags))},
	); err != nil {
		return err
	}
	for _, tag := range o.Tags {
		if err := ar.Save(tag); err != nil {
			return err
		}
	}
	return nil
}

func (o *order) Load(ar *namedbin.InputArchive) error {
	var n namedbin.SizeTag
	if err := ar.Load(&o.Number, &o.Qty, &o.Price, &n); err != nil {
		return err
	}
	o.Tags = make([]string, n)
	for i := range o.Tags {
		if err := ar.Load(&o.Tags[i]); err != nil {
			return err
		}
	}
	return nil
}

func sampleOrder() order {
	return order{
		Number: "SO-12988",
		Qty:    2,
		Price:  mustDec("1999.95"),
		Tags:   []string{"gift", "festival"},
	}
}

func mustDec(s string) namedbin.Decimal {
	d, _ := namedbin.DecFromString(s)
	return d
}

func encodeOrder(t *testing.T, o order) []byte {
	t.Helper()
	var buf bytes.Buffer
	ar := namedbin.NewOutputArchive(&buf)
	if err := ar.Save(namedbin.Named{Name: "order", Value: o}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func payloads(t *testing.T, wire []byte) []byte {
	t.Helper()
	sc := namedbin.NewScanner(bytes.NewReader(wire), namedbin.DefaultLimits())
	recs, err := sc.Records()
	if err != nil {
		t.Fatal(err)
	}
	var out []byte
	for _, rec := range recs {
		out = append(out, rec.Payload...)
	}
	return out
}
