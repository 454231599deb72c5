// Command draupnir-checkdumps validates sponge dump files line by line
// against the load protocol in github.com/fenrir-labs/draupnir/sponge,
// reporting pass/fail/checksum-mismatch for each line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fenrir-labs/draupnir/sponge"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
)

var (
	pHelp     = pflag.BoolP("help", "h", false, "")
	pWidth    = pflag.IntP("width", "w", 64, "the sponge width every dump line is checked against (8, 16, 32, or 64)")
	pDelim    = pflag.StringP("delim", "d", ":", "the field delimiter used by the dumps being checked")
	pQuiet    = pflag.BoolP("quiet", "q", false, "print only failing lines")
	pNoFormat = pflag.Bool("no-formatting", false, "print without ANSI color codes (always true on windows)")
)

var (
	yell, red, und, zero string
	checked, failed      int
)

func main() {
	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	yell, red, und, zero = "\033[33m", "\033[31m", "\033[4m", "\033[0m"
	if runtime.GOOS == "windows" || *pNoFormat || *pQuiet {
		yell, red, und, zero = "", "", "", ""
	}

	if *pHelp || pflag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	delim := byte(':')
	if len(*pDelim) == 1 {
		delim = (*pDelim)[0]
	}
	width := sponge.Width(*pWidth)

	exitCode := 0
	for _, path := range pflag.Args() {
		if err := checkFile(path, width, delim); err != nil {
			fmt.Fprintf(os.Stderr, "%s%s: %v%s\n", red, vainpath.Simplify(path), err, zero)
			exitCode = 1
		}
	}
	if failed > 0 {
		exitCode = 1
	}
	if !*pQuiet {
		fmt.Printf("%s%d/%d lines valid%s\n", yell, checked-failed, checked, zero)
	}
	os.Exit(exitCode)
}

func checkFile(path string, width sponge.Width, delim byte) error {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	name := vainpath.Simplify(path)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		checked++

		if _, err := sponge.Load(width, line, delim); err != nil {
			failed++
			fmt.Printf("%s%s:%d:%s %v\n", red, und+name+zero, lineNo, zero, err)
			continue
		}
		if !*pQuiet {
			fmt.Printf("%s%s:%d:%s ok\n", yell, und+name+zero, lineNo, zero)
		}
	}
	return scanner.Err()
}

func printHelp() {
	fmt.Fprint(os.Stderr, yell+"Validates sponge dump files against the load protocol."+zero+"\n\n"+
		"Usage:\n"+
		"  draupnir-checkdumps [-h]\n"+
		"  draupnir-checkdumps [-w <int>] [-d <delim>] [-q] [--no-formatting] -|FILE...\n\n"+
		"Options:\n")
	pflag.PrintDefaults()
	fmt.Fprint(os.Stderr, "\n`-` is treated as a reference to STDIN. Each line of every FILE is checked\n"+
		"independently; blank lines are skipped.\n")
}
