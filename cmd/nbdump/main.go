package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/namedbin/namedbin-go/namedbin"
)

func main() {
	var in string
	var preview int
	var maxPayload uint64
	flag.StringVar(&in, "in", "", "input stream file (default stdin)")
	flag.IntVar(&preview, "preview", 16, "payload hex preview bytes (0 disables)")
	flag.Uint64Var(&maxPayload, "max-payload", namedbin.DefaultLimits().MaxPayloadBytes, "per-record payload limit in bytes")
	flag.Parse()

	r := io.Reader(os.Stdin)
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			fatalf("open input: %v", err)
		}
		defer f.Close()
		r = f
	}

	limits := namedbin.DefaultLimits()
	limits.MaxPayloadBytes = maxPayload

	sc := namedbin.NewScanner(bufio.NewReader(r), limits)
	for i := 0; ; i++ {
		rec, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fatalf("record %d: %v", i, err)
		}
		fmt.Printf("#%-4d name=%-16q payload=%d", i, rec.Name, len(rec.Payload))
		if preview > 0 {
			p := rec.Payload
			suffix := ""
			if len(p) > preview {
				p = p[:preview]
				suffix = ".."
			}
			fmt.Printf("  %x%s", p, suffix)
		}
		fmt.Println()
	}
	fmt.Printf("%d records, fingerprint %016x\n", sc.Count(), sc.Sum64())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "nbdump: "+format+"\n", args...)
	os.Exit(1)
}
