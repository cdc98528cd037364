package main

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/argtree/internal/actions"
	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/cli"
	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/ui"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	// Config first so that parsing is logged, flags refine it afterwards.
	opts := app.DefaultOptions()
	app.Setup(opts)
	defer func() { _ = log.Close() }()

	deps := &actions.Deps{}
	root := cli.BuildSchema(deps, ui.Console{})

	outcome, err := parser.New(root, parser.WithLogger(log.Named("parser"))).Prepare(args)
	if err != nil {
		return fail(stderr, err)
	}

	opts, err = cli.ApplyGlobals(opts, outcome.Args)
	if err != nil {
		return fail(stderr, err)
	}
	app.Setup(opts)

	application := app.New()
	defer func() { _ = app.Close(application) }()
	*deps = actions.NewDeps(application)

	if err := outcome.Execute(); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	if ue, ok := usage.As(err); ok {
		log.Info("usage error: %v", err)
		_ = help.UserError(stderr, ue)
		return ue.GetExitCode()
	}

	log.Error("%v", err)
	fmt.Fprintln(stderr, style.Error("error: "+err.Error()))
	return 1
}
