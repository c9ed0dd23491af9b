package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/wendigo/ignite/assemble"
	"github.com/wendigo/ignite/ast"
	"github.com/wendigo/ignite/internal/config"
	"github.com/wendigo/ignite/split"
)

var dashv bool

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if !dashv {
		return
	}
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
}

func loadSelect(path string) *ast.Select {
	f, err := os.Open(path)
	if err != nil {
		exitf("%s\n", err)
	}
	defer f.Close()
	q, err := config.Load(f)
	if err != nil {
		exitf("%s\n", err)
	}
	sel, err := config.Build(q)
	if err != nil {
		exitf("%s\n", err)
	}
	return sel
}

// entry point for 'qsplit split <query.yaml>'
func splitCmd(path string) {
	invocationID := uuid.New().String()
	sel := loadSelect(path)
	logf("[%s] splitting query over table %s", invocationID, ast.String(sel.From))

	result, err := split.Split(sel, nil)
	if err != nil {
		exitf("split: %s\n", err)
	}
	printResult(os.Stdout, result)
}

// entry point for 'qsplit dump <query.yaml> <out.sql.zst>'
func dumpCmd(path, out string) {
	invocationID := uuid.New().String()
	sel := loadSelect(path)
	logf("[%s] splitting query over table %s", invocationID, ast.String(sel.From))
	result, err := split.Split(sel, nil)
	if err != nil {
		exitf("split: %s\n", err)
	}

	f, err := os.Create(out)
	if err != nil {
		exitf("creating output: %s\n", err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		exitf("zstd: %s\n", err)
	}
	defer zw.Close()

	printResult(zw, result)
	logf("wrote compressed artifact to %s", out)
}

func printResult(w io.Writer, result *assemble.TwoStepQuery) {
	fmt.Fprintln(w, "-- reduce")
	fmt.Fprintln(w, result.ReduceSQL)
	for _, e := range result.Entries {
		fmt.Fprintf(w, "-- map (%s)\n", e.MergeTable)
		fmt.Fprintln(w, e.SQL)
	}
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage:\n")
		fmt.Fprintf(os.Stderr, "    %s [-v] split <query.yaml>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        split a query into its map/reduce pair and print both\n")
		fmt.Fprintf(os.Stderr, "    %s [-v] dump <query.yaml> <out.sql.zst>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        split a query and write a zstd-compressed SQL dump\n")
		flag.Usage()
		os.Exit(1)
	}

	switch args[0] {
	case "split":
		if len(args) != 2 {
			exitf("usage: split <query.yaml>\n")
		}
		splitCmd(args[1])
	case "dump":
		if len(args) != 3 {
			exitf("usage: dump <query.yaml> <out.sql.zst>\n")
		}
		dumpCmd(args[1], args[2])
	default:
		exitf("commands: split, dump\n")
	}
}
