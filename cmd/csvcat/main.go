// Command csvcat reads a CSV file and prints each row's fields to standard
// out. Reading and formatting errors are printed to standard error with their
// exact position.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/parsekit/row-csv/pkg/csv"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: csvcat <filename.csv>")
		return
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	r, err := csv.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(row)
	}
}
