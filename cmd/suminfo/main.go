// Command suminfo sums numbers as an array of a chosen element type.
//
// Usage:
//
//	suminfo [flags] [value ...]
//
// Without value arguments it reads whitespace-separated values from stdin.
//
// Examples:
//
//	suminfo 1 2 3 4
//	suminfo -dtype float64 1.5 2.5 3.0
//	suminfo -dtype u1 -extended 200 100
//	suminfo -list
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-sum/accum"
	"github.com/cwbudde/algo-sum/array"
	"github.com/cwbudde/algo-sum/dtype"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("suminfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := fs.String("dtype", "int64", "element type (int8..int64, uint8..uint64, float32, float64, or codes like i8, f4)")
	extended := fs.Bool("extended", false, "accept every element type, not only int64 and float64")
	verbose := fs.Bool("v", false, "log kernel selection and element counts")
	list := fs.Bool("list", false, "list element types and whether they are supported")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: suminfo [flags] [value ...]\n\n")
		fmt.Fprintf(stderr, "Sums values as a one-dimensional array of the given element type.\n")
		fmt.Fprintf(stderr, "Without values, reads whitespace-separated values from stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  suminfo 1 2 3 4\n")
		fmt.Fprintf(stderr, "  suminfo -dtype float64 1.5 2.5 3.0\n")
		fmt.Fprintf(stderr, "  suminfo -dtype u1 -extended 200 100\n")
		fmt.Fprintf(stderr, "  suminfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := newLogger(stderr, *verbose)
	defer func() { _ = logger.Sync() }()

	var opts []accum.Option
	if *extended {
		opts = append(opts, accum.WithExtendedTypes())
	}
	acc := accum.New(opts...)
	logger.Debug("accumulator ready",
		zap.String("kernel", acc.Kernel()),
		zap.Bool("extended", *extended),
	)

	if *list {
		if err := printList(stdout, acc); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	typ, err := dtype.Parse(*typeName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	values := fs.Args()
	if len(values) == 0 {
		values, err = readWords(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: reading stdin: %v\n", err)
			return 1
		}
	}

	view, err := buildView(typ, values)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger.Debug("summing",
		zap.Stringer("dtype", typ),
		zap.Int("elements", view.Len()),
	)

	sum, err := acc.Sum(view)
	if err != nil {
		logger.Warn("sum rejected", zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s %s\n", sum, sum.Type())
	return 0
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}

// buildView encodes values into a contiguous native-endian buffer of typ.
func buildView(typ dtype.ElementType, values []string) (*array.Strided, error) {
	size := typ.Size()
	bits := 8 * size
	buf := make([]byte, len(values)*size)

	for i, s := range values {
		elem := buf[i*size : (i+1)*size]
		var raw uint64
		switch typ.Kind() {
		case dtype.KindSigned:
			v, err := strconv.ParseInt(s, 0, bits)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			raw = uint64(v)
		case dtype.KindUnsigned:
			v, err := strconv.ParseUint(s, 0, bits)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			raw = v
		case dtype.KindFloat:
			v, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			raw = math.Float64bits(v)
			if typ == dtype.Float32 {
				raw = uint64(math.Float32bits(float32(v)))
			}
		default:
			return nil, fmt.Errorf("element type %v", typ)
		}
		putRaw(elem, raw)
	}

	return array.NewContiguous(typ, buf)
}

func putRaw(elem []byte, raw uint64) {
	switch len(elem) {
	case 1:
		elem[0] = byte(raw)
	case 2:
		binary.NativeEndian.PutUint16(elem, uint16(raw))
	case 4:
		binary.NativeEndian.PutUint32(elem, uint32(raw))
	case 8:
		binary.NativeEndian.PutUint64(elem, raw)
	}
}

func printList(w io.Writer, acc *accum.Accumulator) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Type\tWidth\tSupported\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, t := range dtype.All() {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%t\n", t, t.Size(), acc.Supports(t)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
