// Command draupnir-gentables precomputes a sponge CRC table for a given
// (width, generator) pair and writes it as a Go source file, so the table
// can be embedded as a compile-time constant instead of rebuilt at
// startup. sponge.Sponge never depends on having run this tool: its
// builder always computes the same table on demand.
package main

import (
	"fmt"
	"os"

	"github.com/fenrir-labs/draupnir/sponge"
	"github.com/spf13/pflag"
)

var (
	pHelp      = pflag.BoolP("help", "h", false, "")
	pWidth     = pflag.IntP("width", "w", 64, "sponge width the table is built for (8, 16, 32, or 64)")
	pGenerator = pflag.Uint64P("generator", "g", 0, "odd generator polynomial (0 selects the width's default)")
	pOut       = pflag.StringP("out", "o", "", "file to append the generated var to (default: stdout)")
	pPackage   = pflag.StringP("package", "p", "main", "package name to emit when writing a new file")
)

func main() {
	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	if *pHelp {
		fmt.Fprint(os.Stderr, "Precomputes a sponge CRC table and emits it as a Go source file.\n\n"+
			"Usage:\n  draupnir-gentables [-w <int>] [-g <uint64>] [-o <file>] [-p <name>]\n\nOptions:\n")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	width := sponge.Width(*pWidth)
	generator := *pGenerator
	if generator == 0 {
		s, err := sponge.NewBuilder(width).Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, "draupnir-gentables:", err)
			os.Exit(1)
		}
		generator = s.Generator()
	}

	table := sponge.PrecomputeTable(width, generator)
	src := render(width, generator, table)

	if *pOut == "" {
		os.Stdout.WriteString(src)
		return
	}
	if _, err := os.Stat(*pOut); os.IsNotExist(err) {
		src = fmt.Sprintf("package %s\n%s", *pPackage, src)
	}
	if err := appendToFile(*pOut, src); err != nil {
		fmt.Fprintln(os.Stderr, "draupnir-gentables:", err)
		os.Exit(1)
	}
	fmt.Printf("%d bytes appended to %s\n", len(src), *pOut)
}

func render(width sponge.Width, generator uint64, table [256]uint64) string {
	name := fmt.Sprintf("table%dW%#x", int(width), generator)
	src := fmt.Sprintf("\n// %s is a precomputed draupnir sponge CRC table for width %d and\n"+
		"// generator %#x, generated by cmd/draupnir-gentables.\n"+
		"var %s = [256]uint64{\n", name, int(width), generator, name)
	for i, v := range table {
		switch {
		case i%8 == 7:
			src += fmt.Sprintf("%#x,\n", v)
		case i%8 == 0:
			src += fmt.Sprintf("\t%#x, ", v)
		default:
			src += fmt.Sprintf("%#x, ", v)
		}
	}
	src += "}\n"
	return src
}

func appendToFile(path, src string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(src)
	return err
}
