package namedbin_test

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/namedbin/namedbin-go/namedbin"
)

func TestOrderRoundTrip(t *testing.T) {
	want := sampleOrder()
	wire := encodeOrder(t, want)

	in := namedbin.NewInputArchive(bytes.NewReader(payloads(t, wire)))
	var got order
	if err := in.Load(&got); err != nil {
		t.Fatal(err)
	}

	if got.Number != want.Number {
		t.Fatalf("number mismatch: %q != %q", got.Number, want.Number)
	}
	if got.Qty != want.Qty {
		t.Fatalf("qty mismatch: %d != %d", got.Qty, want.Qty)
	}
	if got.Price.String() != want.Price.String() {
		t.Fatalf("price mismatch: %s != %s", got.Price, want.Price)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Fatalf("tag count mismatch: %d != %d", len(got.Tags), len(want.Tags))
	}
	for i := range got.Tags {
		if got.Tags[i] != want.Tags[i] {
			t.Fatalf("tag %d mismatch: %q != %q", i, got.Tags[i], want.Tags[i])
		}
	}
}

func TestGoldenStream(t *testing.T) {
	got := encodeOrder(t, sampleOrder())

	path := filepath.Join("testdata", "order.nb.golden.b64")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
		if werr := os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(got)+"\n"), 0o644); werr != nil {
			t.Fatalf("write golden: %v", werr)
		}
	}
	wantB64, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(wantB64)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("golden changed got=%d want=%d", len(got), len(want))
	}
}

func TestStreamIsFlatLeafRecords(t *testing.T) {
	wire := encodeOrder(t, sampleOrder())
	sc := namedbin.NewScanner(bytes.NewReader(wire), namedbin.DefaultLimits())
	recs, err := sc.Records()
	if err != nil {
		t.Fatal(err)
	}

	// No record for the composite itself: "order" never reaches the wire,
	// its pending name is replaced by "number" before any byte is written.
	for _, rec := range recs {
		if rec.Name == "order" {
			t.Fatalf("composite frame leaked onto the wire")
		}
		if len(rec.Payload) == 0 {
			t.Fatalf("empty record %q survived elision", rec.Name)
		}
	}
	if recs[0].Name != "number" {
		t.Fatalf("first record %q, want %q", recs[0].Name, "number")
	}
}
