// Command huffpack compresses and decompresses files with Huffman coding.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffpack"
)

const progName = "huffpack"

var log = logging.MustGetLogger(progName)

const usageText = `Usage: huffpack [-d] [-v] [-o DIR] COMMAND PATH...

Commands:
  compress PATH...      write FILE.huff for every FILE (directories recurse)
  decompress PATH...    write FILE for every FILE.huff (directories recurse)
  verify PATH...        compress and decompress in memory, compare with the original
  compare A B           compare two files or directory trees byte for byte
  dump FILE.huff        print the frequency table and codes of a container

Options:
  -o DIR    write outputs under DIR, keeping paths relative to each argument
  -v        report compression statistics for every file
  -d        enable debug logging
`

type options struct {
	outDir  string
	verbose bool
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, fmt.Sprintf(format, args...))
	io.WriteString(os.Stderr, usageText)
	os.Exit(2)
}

func main() {
	startLogging()

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options
	var debugLogging bool
	flags.StringVar(&opts.outDir, "o", "", "")
	flags.BoolVar(&opts.verbose, "v", false, "")
	flags.BoolVar(&debugLogging, "d", false, "")

	argErr := flags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageText)
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	args := flags.Args()
	if len(args) < 1 {
		usageErrorf("missing COMMAND")
	}
	command, paths := args[0], args[1:]

	var failed int
	switch command {
	case "compress":
		failed = forEachFile(paths, isNotContainer, func(src source) error { return compressFile(src, opts) })
	case "decompress":
		failed = forEachFile(paths, isContainer, func(src source) error { return decompressFile(src, opts) })
	case "verify":
		failed = forEachFile(paths, isAnyFile, func(src source) error { return verifyFile(src, opts) })
	case "compare":
		if len(paths) != 2 {
			usageErrorf("compare takes exactly two paths")
		}
		failed = runCompare(paths[0], paths[1])
	case "dump":
		if len(paths) != 1 {
			usageErrorf("dump takes exactly one path")
		}
		if err := dumpFile(os.Stdout, paths[0]); err != nil {
			log.Errorf("%s: %v", paths[0], err)
			failed++
		}
	default:
		usageErrorf("unknown command %q", command)
	}

	if failed != 0 {
		log.Errorf("%d failure(s)", failed)
		os.Exit(1)
	}
}

// forEachFile runs fn for every file named by or found beneath paths.  A
// failure is logged and counted, and processing moves on to the next file.
func forEachFile(paths []string, match func(string) bool, fn func(source) error) int {
	if len(paths) == 0 {
		usageErrorf("missing PATH")
	}

	var failed int
	for _, path := range paths {
		sources, err := collectSources(path, match)
		if err != nil {
			log.Errorf("%s: %v", path, err)
			failed++
			continue
		}
		if len(sources) == 0 {
			log.Warningf("%s: no matching files", path)
		}
		for _, src := range sources {
			if err := fn(src); err != nil {
				log.Errorf("%s: %v", src.path(), err)
				failed++
			}
		}
	}
	return failed
}

func compressFile(src source, opts options) error {
	input, err := os.ReadFile(src.path())
	if err != nil {
		return err
	}

	compressed, err := huffman.Compress(input)
	if errors.Is(err, huffman.ErrEmptyInput) {
		log.Warningf("%s: empty file, skipped", src.path())
		return nil
	} else if err != nil {
		return err
	}

	dst := compressedPath(opts.outDir, src)
	if err := writeFile(dst, compressed); err != nil {
		return err
	}

	if opts.verbose {
		stats, err := huffman.Analyze(input)
		if err != nil {
			return err
		}
		log.Infof("%s -> %s: %v", src.path(), dst, stats)
	} else {
		log.Infof("%s -> %s", src.path(), dst)
	}
	return nil
}

func decompressFile(src source, opts options) error {
	compressed, err := os.ReadFile(src.path())
	if err != nil {
		return err
	}

	output, err := huffman.Decompress(compressed)
	if err != nil {
		return err
	}

	dst := decompressedPath(opts.outDir, src)
	if err := writeFile(dst, output); err != nil {
		return err
	}
	log.Infof("%s -> %s", src.path(), dst)
	return nil
}

func verifyFile(src source, opts options) error {
	input, err := os.ReadFile(src.path())
	if err != nil {
		return err
	}
	if len(input) == 0 {
		log.Warningf("%s: empty file, skipped", src.path())
		return nil
	}

	compressed, err := huffman.Compress(input)
	if err != nil {
		return err
	}
	output, err := huffman.Decompress(compressed)
	if err != nil {
		return err
	}
	if !bytes.Equal(input, output) {
		return fmt.Errorf("round trip mismatch at byte %d", firstDifference(input, output))
	}

	if opts.verbose {
		log.Infof("%s: ok, %d -> %d bytes", src.path(), len(input), len(compressed))
	} else {
		log.Infof("%s: ok", src.path())
	}
	return nil
}

func runCompare(a, b string) int {
	diffs, err := compareTrees(a, b)
	if err != nil {
		log.Errorf("compare: %v", err)
		return 1
	}
	for _, diff := range diffs {
		log.Errorf("%s", diff)
	}
	if len(diffs) == 0 {
		log.Infof("%s and %s are identical", a, b)
	}
	return len(diffs)
}

func dumpFile(w io.Writer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c, err := huffman.ParseContainer(raw)
	if err != nil {
		return err
	}

	var e huffman.Encoder
	if err := e.Init(c.Table); err != nil {
		return err
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "entries: %d\n", len(c.Table))
	fmt.Fprintf(&buf, "symbols: %d\n", c.Table.Total())
	fmt.Fprintf(&buf, "bits:    %d\n", c.NumBits)
	fmt.Fprintf(&buf, "payload: %d bytes\n", len(c.Payload))
	for _, entry := range c.Table {
		fmt.Fprintf(&buf, "  0x%02x %10d %s\n", byte(entry.Symbol), entry.Count, e.Encode(entry.Symbol))
	}
	_, err = io.WriteString(w, buf.String())
	return err
}
