// filterreads selects aligned reads from a BAM file by SAM flag and
// mapping quality and writes the retained records as SAM on stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/carbocation/pfx"

	"github.com/vreuter/atactk/align"
)

func main() {
	var filename, include, exclude string
	var quality int
	var verbose bool
	flag.StringVar(&filename, "bam", "", "Path to the BAM file to filter.")
	flag.IntVar(&quality, "quality", 30, "Minimum mapping quality of reads to keep.")
	flag.StringVar(&include, "include", "83,99,147,163", "Comma-separated SAM flags; reads matching any of them exactly are kept.")
	flag.StringVar(&exclude, "exclude", "4,8", "Comma-separated SAM flags; reads sharing any bit with any of them are dropped.")
	flag.BoolVar(&verbose, "v", false, "Log filtering counts.")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	includeFlags, err := parseFlagList(include)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	excludeFlags, err := parseFlagList(exclude)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := run(filename, includeFlags, excludeFlags, quality, verbose); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func parseFlagList(value string) ([]int, error) {
	if value == "" {
		return nil, nil
	}
	var flags []int
	for _, field := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		flags = append(flags, n)
	}
	return flags, nil
}

func run(filename string, includeFlags, excludeFlags []int, quality int, verbose bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	reader, err := bam.NewReader(f, 0)
	if err != nil {
		return err
	}
	defer reader.Close()

	var records []*sam.Record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		records = append(records, record)
	}

	kept := align.FilterSAM(records, includeFlags, excludeFlags, quality, verbose)

	writer, err := sam.NewWriter(os.Stdout, reader.Header(), sam.FlagDecimal)
	if err != nil {
		return err
	}
	for _, record := range kept {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
