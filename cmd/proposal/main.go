package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"proposal/internal/proposal"
	"proposal/internal/proposal/content"
	"proposal/internal/trace"
	"proposal/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"
)

// shutdownTimeout bounds the final trace flush.
const shutdownTimeout = 5 * time.Second

// config holds the parsed CLI configuration.
type config struct {
	name          string
	contentPath   string
	seed          uint64
	margin        float64
	noMouseMotion bool
	logFile       string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	set := flag.NewFlagSet("proposal", flag.ContinueOnError)
	set.SetOutput(stderr)
	set.StringVar(&cfg.name, "name", "", "name of the person being asked (overrides the content file)")
	set.StringVar(&cfg.contentPath, "content", "", "YAML file overriding the built-in phrases")
	set.Uint64Var(&cfg.seed, "seed", 0, "random seed; 0 seeds from the clock")
	set.Float64Var(&cfg.margin, "margin", 2, "minimum distance in cells between the No button and the screen edge")
	set.BoolVar(&cfg.noMouseMotion, "no-mouse-motion", false, "disable hover tracking (only clicks are reported)")
	set.StringVar(&cfg.logFile, "log-file", "", "write debug logs to this file")

	set.Usage = func() {
		fmt.Fprintf(stderr, "Usage: proposal [flags]\n\n")
		fmt.Fprintf(stderr, "Asks the big question in your terminal. The No button has other plans.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		set.PrintDefaults()
	}

	if err := set.Parse(args); err != nil {
		return cfg, err
	}
	if set.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", set.Args())
	}
	if cfg.margin <= 0 {
		return cfg, fmt.Errorf("--margin must be positive, got %v", cfg.margin)
	}
	return cfg, nil
}

// loadEnv reads .env from the working directory when present.
func loadEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env: %w", err)
}

// setupLogging sends the standard logger to a file, or discards it: the
// terminal belongs to the UI.
func setupLogging(cfg config) (func(), error) {
	path := cfg.logFile
	if path == "" && os.Getenv("PROPOSAL_DEBUG") != "" {
		path = "proposal.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "proposal")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// probeTerminal measures stdout directly, alongside the size Bubble Tea reports.
func probeTerminal() (int, int, bool) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// logEvent writes one line per view event.
func logEvent(e proposal.Event) {
	switch e.Kind {
	case proposal.EventEvaded:
		log.Printf("proposal: %s via %s to (%.0f, %.0f), rejections=%d",
			e.Kind, e.Trigger, e.Placement.X, e.Placement.Y, e.Rejections)
	case proposal.EventHoverShown, proposal.EventAccepted, proposal.EventIgnored:
		log.Printf("proposal: %s %q, rejections=%d", e.Kind, e.Text, e.Rejections)
	default:
		log.Printf("proposal: %s, rejections=%d", e.Kind, e.Rejections)
	}
}

func run(cfg config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	c, err := content.Load(cfg.contentPath)
	if err != nil {
		return err
	}
	if cfg.name != "" {
		c.Name = cfg.name
	}
	log.Printf("config: name=%q content=%q seed=%d margin=%v mouse-motion=%v",
		c.Name, cfg.contentPath, cfg.seed, cfg.margin, !cfg.noMouseMotion)

	exporter, err := trace.NewOTLPExporter(context.Background())
	if err != nil {
		return err
	}
	recorder := trace.NewRecorder(exporter, nil)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := recorder.Shutdown(ctx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	app := ui.NewAppModel(ui.Config{
		Content:  c,
		Rand:     proposal.NewRand(cfg.seed),
		Observer: proposal.MultiObserver{proposal.ObserverFunc(logEvent), recorder},
		Margin:   cfg.margin,
		Probe:    probeTerminal,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.noMouseMotion {
		opts = append(opts, tea.WithMouseCellMotion())
	} else {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(app.AsTeaModel(), opts...)
	app.Attach(p)

	_, err = p.Run()
	// Quitting through the UI already closed the view; this covers signals.
	app.Close()
	if err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "proposal: %v\n", err)
		os.Exit(1)
	}
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "proposal: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "proposal: %v\n", err)
		os.Exit(1)
	}
}
