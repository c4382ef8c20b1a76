package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/alexivanou/citynews/internal/client"
	"github.com/alexivanou/citynews/internal/config"
	"github.com/alexivanou/citynews/internal/render"
	"github.com/alexivanou/citynews/internal/search"
	"github.com/alexivanou/citynews/internal/stats"
	"github.com/alexivanou/citynews/internal/suggest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	collector := stats.NewCollector()
	api, err := client.New(cfg.API.BaseURL, cfg.API.Timeout, logger, collector)
	if err != nil {
		logger.Fatal("Failed to create API client", zap.Error(err))
	}

	a := &app{
		orch:     search.New(api, logger),
		renderer: render.New(cfg.UI.TermWidth),
		out:      os.Stdout,
	}
	debouncer := suggest.NewDebouncer(cfg.UI.DebounceInterval, api.SuggestCities, a.deliverOptions, logger)
	defer debouncer.Stop()

	logger.Info("Starting client", zap.String("base_url", cfg.API.BaseURL))
	printHelp(a.out)

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ctx := context.Background()
	for {
		fmt.Fprint(a.out, "> ")
		select {
		case <-quit:
			shutdown(logger, collector)
			return
		case line, ok := <-lines:
			if !ok || !a.handle(ctx, debouncer, line) {
				shutdown(logger, collector)
				return
			}
		}
	}
}

type app struct {
	mu       sync.Mutex
	orch     *search.Orchestrator
	renderer *render.Renderer
	out      io.Writer
}

// handle applies one line of input; it returns false when the session ends
func (a *app) handle(ctx context.Context, debouncer *suggest.Debouncer, line string) bool {
	fields := strings.Fields(line)
	command := ""
	if len(fields) > 0 {
		command = fields[0]
	}

	switch command {
	case "/quit", "/q":
		return false

	case "/help":
		printHelp(a.out)

	case "/search":
		a.showLoading()
		a.mu.Lock()
		a.orch.SubmitSearch(ctx)
		a.mu.Unlock()
		a.render()

	case "/global":
		a.showLoading()
		a.mu.Lock()
		a.orch.SubmitGlobal(ctx)
		a.mu.Unlock()
		a.render()

	case "/page":
		if len(fields) != 2 {
			fmt.Fprintln(a.out, "usage: /page N")
			return true
		}
		page, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(a.out, "usage: /page N")
			return true
		}
		a.mu.Lock()
		a.orch.SetPage(page)
		a.mu.Unlock()
		a.render()

	case "/select":
		if len(fields) != 2 {
			fmt.Fprintln(a.out, "usage: /select N")
			return true
		}
		index, err := strconv.Atoi(fields[1])
		a.mu.Lock()
		options := a.orch.State().Options
		if err != nil || index < 1 || index > len(options) {
			a.mu.Unlock()
			fmt.Fprintln(a.out, "no such suggestion")
			return true
		}
		a.orch.SelectOption(options[index-1])
		query := a.orch.State().Query
		a.mu.Unlock()
		fmt.Fprintf(a.out, "query set to %q\n", query)

	default:
		// Free text updates the query and feeds the suggestion debouncer
		a.mu.Lock()
		a.orch.InputChanged(line)
		a.mu.Unlock()
		debouncer.Input(line)
	}

	return true
}

// deliverOptions receives debounced suggestion results
func (a *app) deliverOptions(_ uint64, options []string) {
	a.mu.Lock()
	a.orch.OptionsArrived(options)
	a.mu.Unlock()
	a.render()
}

func (a *app) render() {
	a.mu.Lock()
	view := a.renderer.View(a.orch.State())
	a.mu.Unlock()
	fmt.Fprint(a.out, view)
}

func (a *app) showLoading() {
	fmt.Fprintln(a.out, "Loading...")
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Type a city to see suggestions, then:")
	fmt.Fprintln(out, "  /select N   use the Nth suggestion")
	fmt.Fprintln(out, "  /search     search news for the current query (City, State)")
	fmt.Fprintln(out, "  /global     show global news")
	fmt.Fprintln(out, "  /page N     go to page N")
	fmt.Fprintln(out, "  /quit       exit")
}

func readLines(r io.Reader, lines chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(lines)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func shutdown(logger *zap.Logger, collector *stats.Collector) {
	snapshot := collector.Collect()
	logger.Info("Session finished",
		zap.Int64("requests", snapshot.Requests.Total),
		zap.Int64("failed", snapshot.Requests.Failed),
	)
}
