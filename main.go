package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/beevik/etree"
	"github.com/mcncl/xml2object/internal/config"
	"github.com/mcncl/xml2object/internal/encoder"
	"github.com/mcncl/xml2object/internal/errors"
	"github.com/mcncl/xml2object/internal/parser"
	"github.com/mcncl/xml2object/internal/transcoder"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input XML file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output JSON file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to config file. Defaults to the nearest .xml2object.yml." short:"c" type:"path"`
	TextKey     string `help:"Reserved key for text content of elements that also carry attributes." default:"#text"`
	AttrPrefix  string `help:"Prefix applied to attribute keys (e.g. '@')."`
	KeyCase     string `help:"Casing applied to output keys." enum:"original,camel,pascal,snake,kebab" default:"original"`
	Raw         bool   `help:"Disable scalar coercion; emit all leaf values as strings." short:"r"`
	Compact     bool   `help:"Emit compact JSON without indentation."`
	Indent      int    `help:"Number of spaces per indentation level." default:"2"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct XML input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("xml2object"),
		kong.Description("A tool to convert XML documents to JSON"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("xml2object version %s\n", Version)
		return
	}

	cfg, err := resolveConfig()
	if err == nil {
		err = run(&Context{Debug: CLI.Debug, Config: cfg})
	}
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: xml2object --help\n")

		os.Exit(1)
	}
}

// resolveConfig loads the config file (explicit flag or discovered) and
// applies CLI overrides on top
func resolveConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to load config from '%s'", configPath), err)
		}
		cfg = loaded
	}

	// Apply CLI overrides only when they differ from the flag defaults, so
	// config file values survive an unadorned invocation.
	if CLI.TextKey != "" && CLI.TextKey != "#text" {
		cfg.Keys.TextKey = CLI.TextKey
	}
	if CLI.AttrPrefix != "" {
		cfg.Keys.AttributePrefix = CLI.AttrPrefix
	}
	if CLI.KeyCase != "" && CLI.KeyCase != config.CasingOriginal {
		cfg.Keys.Casing = CLI.KeyCase
	}
	if CLI.Raw {
		cfg.Coercion.Booleans = false
		cfg.Coercion.Numbers = false
	}
	if CLI.Compact {
		cfg.Output.Indent = 0
	} else if CLI.Indent != 2 {
		cfg.Output.Indent = CLI.Indent
	}
	if CLI.Debug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewInputError("invalid configuration", err)
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse XML input
	root, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Transcode the element tree into a JSON value tree
	transcoderInst := transcoder.NewTranscoderWithConfig(ctx.Config)
	result := transcoderInst.Transcode(root)

	// 3. Encode the JSON value to text
	encoderInst := encoder.NewEncoderWithIndent(ctx.Config.Output.Indent)
	text, err := encoderInst.Encode(result)
	if err != nil {
		return errors.NewEncodeError("failed to encode JSON output", err)
	}

	// 4. Output the result
	return writeOutput(text)
}

// parseInput reads XML from file or stdin
func parseInput() (*etree.Element, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	xmlData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(xmlData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(xmlData))
}

// writeOutput writes JSON text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "JSON output written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste XML
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (*etree.Element, error) {
	fmt.Fprintln(os.Stderr, "xml2object Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your XML below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var xmlBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		xmlBuilder.WriteString(line)
	}

	xmlData := xmlBuilder.String()
	if len(xmlData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing XML...")
	return parser.ParseString(xmlData)
}
