package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/namedbin/namedbin-go/namedbinsec"
)

func main() {
	var mode string
	var keyring string
	var kid string
	var alg string
	var in string
	var out string

	flag.StringVar(&mode, "mode", "", "seal | open")
	flag.StringVar(&keyring, "keyring", "", "path to TOML keyring file (required)")
	flag.StringVar(&kid, "kid", "k1", "key id to seal under")
	flag.StringVar(&alg, "alg", "xchacha", "xchacha | aesgcm")
	flag.StringVar(&in, "in", "", "input file (default stdin)")
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.Parse()

	if mode != "seal" && mode != "open" {
		fatalf("invalid -mode (use seal or open)")
	}
	if keyring == "" {
		fatalf("missing -keyring")
	}

	kr, err := namedbinsec.LoadKeyringTOML(keyring)
	if err != nil {
		fatalf("%v", err)
	}

	var algID namedbinsec.Alg
	switch alg {
	case "xchacha":
		algID = namedbinsec.AlgXChaCha20Poly1305
	case "aesgcm":
		algID = namedbinsec.AlgAES256GCM
	default:
		fatalf("invalid -alg (use xchacha or aesgcm)")
	}

	data, err := readInput(in)
	if err != nil {
		fatalf("read input: %v", err)
	}

	var result []byte
	switch mode {
	case "seal":
		hdr := namedbinsec.Header{Alg: algID, KeyID: kid}
		result, err = namedbinsec.Seal(data, hdr, kr)
		if err != nil {
			fatalf("seal: %v", err)
		}
	case "open":
		var hdr namedbinsec.Header
		result, hdr, err = namedbinsec.Open(data, kr)
		if err != nil {
			fatalf("open: %v", err)
		}
		fmt.Fprintf(os.Stderr, "nbseal: opened stream sealed under key %q (%s)\n", hdr.KeyID, hdr.Alg)
	}

	if err := writeOutput(out, result); err != nil {
		fatalf("write output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "nbseal: "+format+"\n", args...)
	os.Exit(1)
}
