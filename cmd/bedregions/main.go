// bedregions streams a BED file and prints the extended region around
// each feature as BED6.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/vreuter/atactk/bed"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096)

func main() {
	defer STDOUT.Flush()

	var filename string
	var extension, shift int
	flag.StringVar(&filename, "file", "", "Path to the BED file, optionally compressed.")
	flag.IntVar(&extension, "extension", 100, "Bases to extend the region on either side of each feature.")
	flag.IntVar(&shift, "shift", 0, "Bases to shift the region of reverse-strand features upstream.")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := printRegions(filename, extension, shift); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func printRegions(filename string, extension, shift int) error {
	r, err := bed.Open(filename, extension, shift)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		feature, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		fmt.Fprintf(STDOUT, "%s\t%d\t%d\t%s\t%g\t%s\n",
			feature.Reference, feature.RegionStart, feature.RegionEnd,
			feature.Name, feature.Score, feature.Strand)
	}

	return nil
}
