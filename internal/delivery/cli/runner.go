// Package cli is the command-line presentation host of the catalog engine.
// Each subcommand parses its flags, calls one engine operation and prints the
// resulting records as text.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"wozmarket/config"
	deliverycontext "wozmarket/internal/delivery/context"
	"wozmarket/internal/domain/service"
	"wozmarket/internal/errors"
	"wozmarket/internal/usecase"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Session usecase.CatalogSession
	Catalog usecase.CatalogUsecase
	Detail  usecase.DetailUsecase
	Now     service.Clock
}

// Runner dispatches subcommands to the engine.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	session usecase.CatalogSession
	catalog usecase.CatalogUsecase
	detail  usecase.DetailUsecase
	now     service.Clock

	out    io.Writer
	errOut io.Writer
}

type command struct {
	name    string
	summary string
	run     func(r *Runner, ctx context.Context, args []string) error
}

// commandTable lists the subcommands in usage order.
func commandTable() []command {
	return []command{
		{"list", "List the filtered catalog page by page", (*Runner).handleList},
		{"search", "Type successive queries through the debounced search box", (*Runner).handleSearch},
		{"show", "Show the detail view of a product", (*Runner).handleShow},
		{"checkout", "Show the checkout summary of a product", (*Runner).handleCheckout},
		{"export", "Export the filtered catalog as CSV", (*Runner).handleExport},
		{"submit", "Publish a user listing", (*Runner).handleSubmit},
		{"facets", "List the supplier, seller and category options", (*Runner).handleFacets},
		{"qr", "Write the share QR code of a product", (*Runner).handleQR},
		{"reset", "Clear every persisted collection", (*Runner).handleReset},
	}
}

// NewRunner creates a runner printing to stdout and stderr.
func NewRunner(params Params) *Runner {
	return &Runner{
		cfg:     params.Config,
		logger:  params.Logger,
		session: params.Session,
		catalog: params.Catalog,
		detail:  params.Detail,
		now:     params.Now,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput redirects the runner's output streams.
func (r *Runner) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
}

// Run executes the subcommand named by args[0].
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		r.PrintUsage()

		return errors.New("missing subcommand")
	}

	for _, cmd := range commandTable() {
		if cmd.name == args[0] {
			ctx = deliverycontext.WithCommand(ctx, r.logger, cmd.name)

			return r.runLogged(ctx, cmd, args[1:])
		}
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		r.PrintUsage()

		return nil
	}

	r.PrintUsage()

	return errors.Errorf("unknown subcommand: %s", args[0])
}

// runLogged runs cmd; in debug mode it also logs the outcome and latency.
func (r *Runner) runLogged(ctx context.Context, cmd command, args []string) error {
	if !r.cfg.Env.Debug {
		return cmd.run(r, ctx, args)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	start := time.Now()
	err := cmd.run(r, ctx, args)

	attrs := []any{slog.Duration("latency", time.Since(start))}
	if err != nil {
		logger.Error("Command failed", append(attrs, slog.Any("error", err))...)
	} else {
		logger.Info("Command completed", attrs...)
	}

	return err
}

// PrintUsage lists the subcommands.
func (r *Runner) PrintUsage() {
	fmt.Fprintln(r.errOut, "Woz marketplace catalog")
	fmt.Fprintln(r.errOut, "")
	fmt.Fprintln(r.errOut, "Usage:")
	fmt.Fprintln(r.errOut, "  woz <command> [options]")
	fmt.Fprintln(r.errOut, "")
	fmt.Fprintln(r.errOut, "Commands:")
	for _, cmd := range commandTable() {
		fmt.Fprintf(r.errOut, "  %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(r.errOut, "")
	fmt.Fprintln(r.errOut, "Use 'woz <command> -h' for more information about a command.")
}

func (r *Runner) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.errOut)

	return fs
}
