// Diagnostic tool for inspecting s3 binary model files
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/speechbox/go-s3file/errlog"
	"github.com/speechbox/go-s3file/s3file"
)

func main() {
	level := flag.String("loglevel", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR, FATAL)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: s3dump [-loglevel LEVEL] <file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := errlog.SetLevelString(*level); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	buf, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	f := s3file.New(buf)
	defer f.Release()

	if err := f.ParseHeader(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: parsing header of %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("=== %s ===\n\n", path)
	order := "native"
	if f.Swapped() {
		order = "swapped"
	}
	fmt.Printf("Byte order: %s\n", order)
	fmt.Printf("Header entries: %d\n", f.NumHeaders())
	for i, e := range f.Headers() {
		fmt.Printf("  [%d] %s = %s\n", i, e.Name, e.Value)
	}
	fmt.Printf("Payload bytes (including trailing checksum): %d\n", f.Remaining())
}
