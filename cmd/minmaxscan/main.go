// Command minmaxscan prints the value range of float32 sample files.
//
// Usage:
//
//	minmaxscan [flags] file ...
//
// Files hold packed little-endian float32 samples (-format raw) or whitespace
// separated numbers (-format text). Names ending in .zst, .gz or .lz4 are
// decompressed on the fly; "-" reads standard input.
//
// Examples:
//
//	minmaxscan trace.f32
//	minmaxscan -stride 2 -offset 1 stereo.f32.zst
//	minmaxscan -unsafe -format text samples.txt
//	minmaxscan -info
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-minmax/stats/minmax"
)

type options struct {
	stride int
	offset int
	count  int
	unsafe bool
	format string
	info   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("minmaxscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.stride, "stride", 1, "element stride")
	fs.IntVar(&opts.offset, "offset", 0, "index of the first element")
	fs.IntVar(&opts.count, "count", -1, "number of elements to scan (-1: all reachable)")
	fs.BoolVar(&opts.unsafe, "unsafe", false, "keep NaN/Inf handling to plain comparisons")
	fs.StringVar(&opts.format, "format", formatRaw, "input format: raw or text")
	fs.BoolVar(&opts.info, "info", false, "print dispatch diagnostics and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: minmaxscan [flags] file ...\n\n")
		fmt.Fprintf(stderr, "Prints the min/max of float32 sample files.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.info {
		printInfo(stdout)
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if opts.stride < 1 {
		fmt.Fprintf(stderr, "minmaxscan: -stride must be positive, got %d\n", opts.stride)
		return 2
	}
	if opts.offset < 0 {
		fmt.Fprintf(stderr, "minmaxscan: -offset must not be negative, got %d\n", opts.offset)
		return 2
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tCOUNT\tMIN\tMAX")

	status := 0
	for _, name := range fs.Args() {
		count, lo, hi, err := scanFile(name, opts, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "minmaxscan: %s: %v\n", name, err)
			status = 1
			continue
		}
		if minmax.IsEmpty(lo, hi) {
			fmt.Fprintf(tw, "%s\t%d\tempty\tempty\n", name, count)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", name, count, formatValue(lo), formatValue(hi))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "minmaxscan: %v\n", err)
		return 1
	}
	return status
}

func scanFile(name string, opts options, stdin io.Reader) (count int, lo, hi float32, err error) {
	samples, err := readSamples(name, opts.format, stdin)
	if err != nil {
		return 0, 0, 0, err
	}

	view, count, err := selectView(samples, opts)
	if err != nil {
		return 0, 0, 0, err
	}

	if opts.unsafe {
		lo, hi = minmax.UnsafeScanArray(view, count, opts.stride)
	} else {
		lo, hi = minmax.ScanArray(view, count, opts.stride)
	}
	return count, lo, hi, nil
}

// selectView applies -offset and -count to samples.
func selectView(samples []float32, opts options) ([]float32, int, error) {
	if opts.offset > len(samples) {
		return nil, 0, fmt.Errorf("offset %d beyond %d samples", opts.offset, len(samples))
	}
	view := samples[opts.offset:]

	reachable := 0
	if len(view) > 0 {
		reachable = (len(view)-1)/opts.stride + 1
	}

	switch {
	case opts.count < 0:
		return view, reachable, nil
	case opts.count > reachable:
		return nil, 0, fmt.Errorf("count %d exceeds %d reachable samples", opts.count, reachable)
	default:
		return view, opts.count, nil
	}
}

func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func printInfo(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "arch\t%s\n", runtime.GOARCH)
	fmt.Fprintf(tw, "implementation\t%s\n", minmax.Implementation())
	fmt.Fprintf(tw, "mode\t%d (%s)\n", int(minmax.CurrentMode()), minmax.CurrentMode())
	fmt.Fprintf(tw, "has_sse2\t%t\n", minmax.HasSSE2())
	fmt.Fprintf(tw, "use_sse2\t%t\n", minmax.UseSSE2())
	fmt.Fprintf(tw, "override\t%s\n", minmax.ModeEnv)
	_ = tw.Flush()
}
