// Package main provides the command-line interface for xmlscan.
// It extracts elements from markup files or standard input and writes them
// in various formats.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrjoshuak/xmlscan"
	"github.com/mrjoshuak/xmlscan/extractor"
	"github.com/mrjoshuak/xmlscan/types"
	"go.uber.org/zap"
)

// OutputFormat represents the supported output formats for the extracted elements.
// The available formats are JSON, XML, and plain text.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatXML  OutputFormat = "xml"
	FormatText OutputFormat = "text"
)

func main() {
	inputFiles := flag.String("input", "", "Input file path(s) (comma-separated, use '-' for stdin)")
	outputDir := flag.String("output-dir", "", "Output directory for batch processing (default: stdout)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	name := flag.String("name", "", "Element name to extract (default: every top-level element)")
	contentOnly := flag.Bool("content", false, "Extract element content without the element's own tags")
	start := flag.Int("start", 0, "Byte offset to start scanning at")
	limit := flag.Int("limit", 0, "Maximum number of elements per input (0 for no limit)")
	formatStr := flag.String("format", "json", "Output format: json, xml, or text")
	normalize := flag.Bool("normalize", false, "Normalize Unicode and whitespace in extracted text")
	compact := flag.Bool("compact", false, "Output compact JSON without indentation")
	maxSize := flag.Int("max-size", types.DefaultOptions().MaxBufferSize, "Maximum input size in bytes (0 for no limit)")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for extraction")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xmlscan - Extract elements from markup without parsing it\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input content.xml -name text:p -content -format text\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input manifest.xml -name manifest:file-entry -output entries.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input a.xml,b.xml -name office:body -format xml -output-dir ./extracted\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat content.xml | %s -input - -name text:h\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := xmlscan.GetBuildInfo()
		fmt.Printf("%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
		os.Exit(0)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	format := OutputFormat(strings.ToLower(*formatStr))
	if format != FormatJSON && format != FormatXML && format != FormatText {
		logger.Fatal("invalid output format, must be one of: json, xml, text", zap.String("format", *formatStr))
	}

	var inputs []string
	if *inputFiles == "" || *inputFiles == "-" {
		inputs = []string{"-"}
	} else {
		inputs = strings.Split(*inputFiles, ",")
	}

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			logger.Fatal("creating output directory", zap.String("dir", *outputDir), zap.Error(err))
		}
	} else if *outputFile != "" && len(inputs) > 1 {
		logger.Warn("multiple input files with single output file specified, using stdout")
		*outputFile = ""
	}

	ext := extractor.New(
		extractor.WithName(*name),
		extractor.WithContentOnly(*contentOnly),
		extractor.WithStart(*start),
		extractor.WithLimit(*limit),
		extractor.WithNormalizeText(*normalize),
		extractor.WithPlainText(format == FormatText),
		extractor.WithMaxBufferSize(*maxSize),
		extractor.WithTimeout(*timeout),
	)

	failed := 0
	for _, inputPath := range inputs {
		if err := process(ext, inputPath, outputPath(inputPath, *outputDir, *outputFile, format), format, *compact, logger); err != nil {
			logger.Error("processing input", zap.String("input", inputPath), zap.Error(err))
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// process extracts the elements of one input and writes them to outPath,
// or to stdout when outPath is empty. A malformed element is logged and the
// elements found before it are still written.
func process(ext extractor.Extractor, inputPath, outPath string, format OutputFormat, compact bool, logger *zap.Logger) error {
	var input io.Reader = os.Stdin
	if inputPath != "-" {
		file, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer file.Close()
		input = file
	}

	elements, err := ext.ExtractFromReader(input, nil)
	if err != nil {
		if !errors.Is(err, types.ErrMalformed) {
			return err
		}
		logger.Warn("stopped at malformed element", zap.String("input", inputPath), zap.Error(err))
	}
	logger.Debug("extracted elements", zap.String("input", inputPath), zap.Int("count", len(elements)))

	data, err := render(elements, format, compact)
	if err != nil {
		return err
	}

	if outPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := writeFile(outPath, data); err != nil {
		return err
	}
	logger.Info("processed", zap.String("input", inputPath), zap.String("output", outPath), zap.Int("elements", len(elements)))
	return nil
}

// writeFile writes data to path. The error from Close is reported since a
// failed flush there means the file is incomplete.
func writeFile(path string, data []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// outputPath determines where the result for inputPath is written.
// An empty result means stdout.
func outputPath(inputPath, outputDir, outputFile string, format OutputFormat) string {
	if inputPath == "-" || outputDir == "" {
		return outputFile
	}

	baseName := filepath.Base(inputPath)
	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))

	var outputExt string
	switch format {
	case FormatJSON:
		outputExt = ".json"
	case FormatXML:
		outputExt = ".xml"
	case FormatText:
		outputExt = ".txt"
	}

	return filepath.Join(outputDir, nameWithoutExt+outputExt)
}

// render converts extracted elements into the requested output format.
func render(elements []types.Element, format OutputFormat, compact bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		var data []byte
		var err error
		if compact {
			data, err = json.Marshal(elements)
		} else {
			data, err = json.MarshalIndent(elements, "", "  ")
		}
		if err != nil {
			return nil, fmt.Errorf("converting elements to JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatXML:
		var b strings.Builder
		for _, el := range elements {
			b.WriteString(el.Text)
			b.WriteString("\n")
		}
		return []byte(b.String()), nil
	case FormatText:
		var b strings.Builder
		for _, el := range elements {
			if el.PlainText == "" {
				continue
			}
			b.WriteString(el.PlainText)
			b.WriteString("\n\n")
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
