// Package main is the draftdoc command: a driver around the document engine
// that applies edit scripts and prints the resulting text, pieces, and style
// runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Sebkah/99draft-sub000/internal/config"
	"github.com/Sebkah/99draft-sub000/internal/engine"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	logLevel   string
	watch      bool
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger := logging.New(cfg.Logging.Level)
	logging.SetDefault(logger)

	if opts.watch && opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath, func(cfg *config.Config) {
			logging.SetLevel(cfg.Logging.Level)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch config: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	docOpts := []engine.Option{engine.WithConfig(cfg), engine.WithLogger(logger)}
	if len(opts.files) > 0 {
		content, err := os.ReadFile(opts.files[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		docOpts = append(docOpts, engine.WithContent(string(content)))
	}
	doc := engine.New(docOpts...)

	script := io.Reader(os.Stdin)
	if opts.scriptPath != "" && opts.scriptPath != "-" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		script = f
	}

	if err := runScript(doc, script, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runScript executes edit commands line by line. Blank lines and lines
// starting with # are skipped.
func runScript(doc *engine.Document, r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runCommand(doc, line, out); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func runCommand(doc *engine.Document, line string, out io.Writer) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "insert":
		// insert <position> <text...>
		if len(args) < 2 {
			return fmt.Errorf("usage: insert <position> <text>")
		}
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return doc.Insert(pos, strings.Join(args[1:], " "))

	case "delete":
		// delete <start> <count>
		start, count, err := twoInts(args)
		if err != nil {
			return err
		}
		return doc.Delete(start, count)

	case "toggle", "enable", "disable":
		// toggle <axis> <start> <end>
		if len(args) != 3 {
			return fmt.Errorf("usage: %s <axis> <start> <end>", cmd)
		}
		start, end, err := twoInts(args[1:])
		if err != nil {
			return err
		}
		switch cmd {
		case "toggle":
			return doc.ToggleStyle(args[0], start, end)
		case "enable":
			return doc.EnableStyle(args[0], start, end)
		default:
			return doc.DisableStyle(args[0], start, end)
		}

	case "set":
		// set <axis> <start> <end> <value>
		if len(args) != 4 {
			return fmt.Errorf("usage: set <axis> <start> <end> <value>")
		}
		start, end, err := twoInts(args[1:3])
		if err != nil {
			return err
		}
		return doc.SetStyleValue(args[0], start, end, args[3])

	case "text":
		fmt.Fprintln(out, doc.Text())
		return nil

	case "pieces":
		for _, p := range doc.Pieces() {
			text, err := doc.PieceText(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%v %q\n", p, text)
		}
		return nil

	case "runs":
		// runs <axis>
		if len(args) != 1 {
			return fmt.Errorf("usage: runs <axis>")
		}
		runs, err := doc.StyleRuns(args[0], 0, doc.Len())
		if err != nil {
			valueRuns, verr := doc.ValueRuns(args[0], 0, doc.Len())
			if verr != nil {
				return err
			}
			for _, r := range valueRuns {
				fmt.Fprintln(out, r)
			}
			return nil
		}
		for _, r := range runs {
			fmt.Fprintln(out, r)
		}
		return nil

	case "value":
		// value <axis> <position>
		if len(args) != 2 {
			return fmt.Errorf("usage: value <axis> <position>")
		}
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		v, ok, err := doc.StyleValueAt(args[0], pos)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "<unset>")
			return nil
		}
		fmt.Fprintln(out, v)
		return nil

	case "version":
		fmt.Fprintln(out, doc.Version())
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func twoInts(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected two integers, got %v", args)
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Edit script to execute (default: stdin)")
	flag.StringVar(&opts.scriptPath, "s", "", "Edit script to execute (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the configuration file on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "draftdoc - document engine driver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: draftdoc [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nScript commands:\n")
		fmt.Fprintf(os.Stderr, "  insert <position> <text>       insert text\n")
		fmt.Fprintf(os.Stderr, "  delete <start> <count>         delete characters\n")
		fmt.Fprintf(os.Stderr, "  toggle <axis> <start> <end>    toggle an on/off style\n")
		fmt.Fprintf(os.Stderr, "  enable <axis> <start> <end>    turn an on/off style on\n")
		fmt.Fprintf(os.Stderr, "  disable <axis> <start> <end>   turn an on/off style off\n")
		fmt.Fprintf(os.Stderr, "  set <axis> <start> <end> <v>   assign a style value\n")
		fmt.Fprintf(os.Stderr, "  text | pieces | runs <axis> | value <axis> <pos> | version\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("draftdoc %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	opts.files = flag.Args()
	return opts
}
