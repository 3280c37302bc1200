// SPDX-License-Identifier: EPL-2.0

// Command pcm2c converts an audio file into a C array for use in embedded
// systems.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pcm2c"
	"github.com/ik5/pcm2c/audio"
	"github.com/ik5/pcm2c/carray"
)

// maxSamplesDefault is about 5 seconds of 16-bit 44.1kHz audio (~440 kB of
// source text). Shrink the input instead of raising this when flash is
// tight.
const maxSamplesDefault = 220000

var (
	arrayName  string
	outputPath string
	baseFlag   string
	maxSamples int
	noComment  bool
	prefixFile string
	prefixText string
	withHeader bool
	verbosity  int
	version    bool
)

func init() {
	flag.StringVar(&arrayName, "a", "", "Array name (defaults to the input file name without extension)")
	flag.StringVar(&outputPath, "o", "", "Output file (defaults to stdout)")
	flag.StringVar(&baseFlag, "f", "base10", "Number format for the array values: base10 or base16")
	flag.IntVar(&maxSamples, "m", maxSamplesDefault, "Maximum number of samples, to sanity check the array size")
	flag.BoolVar(&noComment, "n", false, "Do not include a comment with the file information")
	flag.StringVar(&prefixFile, "H", "", "File to read and write to the output before the array (conflicts with -p)")
	flag.StringVar(&prefixText, "p", "", "String to prepend to the output before the array (conflicts with -H)")
	flag.BoolVar(&withHeader, "header", false, "Also write a companion .h declaration (requires -o)")
	flag.IntVar(&verbosity, "v", 0, "Verbosity level (0-3)")
	flag.BoolVar(&version, "version", false, "Display version information")
}

func setupLogging(verbosity int) {
	var level slog.Level
	switch verbosity {
	case 0:
		level = slog.LevelWarn
	case 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	flag.Parse()

	if version {
		fmt.Printf("%s version %s\n", carray.GeneratorName, carray.GeneratorVersion)
		return
	}

	setupLogging(verbosity)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.Arg(0)
	if input == "" {
		return errors.New("input file is required")
	}

	if prefixFile != "" && prefixText != "" {
		return errors.New("-p and -H are mutually exclusive")
	}

	if withHeader && outputPath == "" {
		return errors.New("-header requires -o")
	}

	var base carray.Base
	switch baseFlag {
	case "base10":
		base = carray.Decimal
	case "base16":
		base = carray.Hex
	default:
		return fmt.Errorf("unknown number format %q", baseFlag)
	}

	// Refuse a populated destination before doing any work.
	if outputPath != "" {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%w: %s", pcm2c.ErrOutputExists, outputPath)
		}
	}

	prefix := prefixText
	if prefixFile != "" {
		data, err := os.ReadFile(prefixFile)
		if err != nil {
			return fmt.Errorf("reading prefix file: %w", err)
		}
		prefix = string(data)
	}

	name := arrayName
	if name == "" {
		name = strings.ToLower(strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)))
	}

	key := strings.ToLower(strings.TrimPrefix(filepath.Ext(input), "."))
	if key == "" {
		key = "wav"
	}

	decoder, ok := pcm2c.DefaultRegistry().Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", pcm2c.ErrUnknownFormat, key)
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	sourceName := filepath.Base(input)
	slog.Info("processing file", "file", sourceName)

	buf, err := decoder.Decode(f)
	if err != nil {
		return err
	}

	slog.Info(carray.FormatSummary(buf.Format))

	if buf.Format.Channels == 2 {
		slog.Warn("merging stereo channels into mono")
	}

	mono, err := audio.DownmixMono(buf)
	if err != nil {
		return err
	}

	out, err := carray.Render(mono, carray.Options{
		ArrayName:  name,
		SourceName: sourceName,
		MaxSamples: maxSamples,
		NoComment:  noComment,
		Base:       base,
		Prefix:     prefix,
		Header:     withHeader,
	})
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Println(out.Body)
		return nil
	}

	if err := pcm2c.WriteOutput(outputPath, out); err != nil {
		return err
	}

	slog.Info("output written", "path", outputPath)

	return nil
}
