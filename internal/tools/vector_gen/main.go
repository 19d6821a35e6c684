package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"xdao.co/elbonian/elbonian"
)

type multiIntFlag []int

func (m *multiIntFlag) String() string {
	parts := make([]string, len(*m))
	for i, v := range *m {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (m *multiIntFlag) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*m = append(*m, n)
	return nil
}

// Default values cover every tier boundary and both ends of the range.
var defaultValues = []int{
	1, 2, 3, 4, 5, 8, 9, 10, 13, 29, 30, 42, 99, 100, 101, 299, 300, 999,
	1000, 1999, 2000, 2999, 3000, 4321, 5555, 6000, 7000, 8000, 8999, 9000,
	9998, 9999,
}

func main() {
	var values multiIntFlag
	outPath := flag.String("out", "", "output file (default stdout)")
	all := flag.Bool("all", false, "emit every value in range")
	flag.Var(&values, "value", "value to emit (repeatable)")
	flag.Parse()

	switch {
	case *all:
		values = values[:0]
		for v := elbonian.MinValue; v <= elbonian.MaxValue; v++ {
			values = append(values, v)
		}
	case len(values) == 0:
		values = defaultValues
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := write(w, values); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// write emits the canonical.tsv conformance format.
func write(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# value\telbonian\tcid")
	for _, v := range values {
		n, err := elbonian.FromArabic(v)
		if err != nil {
			return fmt.Errorf("value %d: %w", v, err)
		}
		fmt.Fprintf(bw, "%d\t%s\t%s\n", v, n.Elbonian(), n.CID())
	}
	return bw.Flush()
}
