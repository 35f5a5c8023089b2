package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
	"github.com/tebeka/atexit"
)

const (
	exitOK = iota
	exitFailure
	exitSyntax
	exitRuntime
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bfi: %v\n", err)
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		atexit.Exit(exitFailure)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(cancel)

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		output *bfio.Output,
	) {
		atexit.Register(func() {
			output.Flush()
		})
	})

	atexit.Exit(execute(ctx, scope))
}

func execute(ctx context.Context, scope dscope.Scope) (code int) {
	var (
		load       bficonfigs.LoadSettings
		logger     logs.Logger
		newSpan    logs.NewSpan
		stderr     logs.Writer
		stdin      bfio.Stdin
		input      bfio.Input
		output     *bfio.Output
		tap        debugs.Tap
		script     debugs.Script
		newMachine bfvm.NewMachine
	)
	scope.Call(func(
		l bficonfigs.LoadSettings,
		lg logs.Logger,
		ns logs.NewSpan,
		w logs.Writer,
		i bfio.Stdin,
		in bfio.Input,
		out *bfio.Output,
		t debugs.Tap,
		s debugs.Script,
		nm bfvm.NewMachine,
	) {
		load, logger, newSpan, stderr = l, lg, ns, w
		stdin, input, output = i, in, out
		tap, script = t, s
		newMachine = nm
	})

	fail := func(code int, err error) int {
		logger.DebugContext(ctx, "failed", "error", logs.WrapSpan(ctx, err))
		fmt.Fprintf(stderr, "bfi: %v\n", err)
		return code
	}

	ctx, _ = newSpan(ctx, "", "bfi")

	settings, err := load()
	if err != nil {
		return fail(exitFailure, err)
	}
	mode, err := settings.RunMode()
	if err != nil {
		return fail(exitFailure, err)
	}
	config, err := settings.MachineConfig()
	if err != nil {
		return fail(exitFailure, err)
	}

	// source
	var src io.Reader = stdin
	name := "<stdin>"
	if settings.File != "" && settings.File != "-" {
		f, err := os.Open(settings.File)
		if err != nil {
			return fail(exitFailure, err)
		}
		defer f.Close()
		src = f
		name = settings.File
	}
	program, err := bfcode.Compile(name, src)
	if err != nil {
		var syntaxErr *bfcode.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fail(exitSyntax, err)
		}
		return fail(exitFailure, err)
	}
	logger.DebugContext(ctx, "compiled",
		"source", name,
		"instructions", len(program),
		"mode", mode,
	)

	if mode == bficonfigs.RunModeDump {
		if err := bfcode.Dump(output, program); err != nil {
			return fail(exitFailure, err)
		}
		if err := output.Flush(); err != nil {
			return fail(exitFailure, err)
		}
		return exitOK
	}

	machine, err := newMachine(config, program, input, output)
	if err != nil {
		return fail(exitFailure, err)
	}

	runErr := machine.Run(ctx)
	code = exitOK
	if runErr != nil {
		var runtimeErr *bfvm.RuntimeError
		if errors.As(runErr, &runtimeErr) {
			code = fail(exitRuntime, runErr)
		} else {
			code = fail(exitFailure, runErr)
		}
	}

	if mode == bficonfigs.RunModeTap {
		globals := debugs.MachineGlobals(ctx, machine)
		if runErr != nil {
			globals["error"] = runErr.Error()
		}
		if settings.TapScript != "" {
			content, err := os.ReadFile(settings.TapScript)
			if err != nil {
				return fail(exitFailure, err)
			}
			err = script(ctx, settings.TapScript, string(content), globals, output)
			if e := output.Flush(); err == nil {
				err = e
			}
			if err != nil {
				return fail(exitFailure, err)
			}
		} else {
			tap(ctx, name, globals)
		}
	}

	if settings.Snapshot != "" {
		if err := writeSnapshot(settings.Snapshot, machine); err != nil {
			return fail(exitFailure, err)
		}
	}

	logger.DebugContext(ctx, "done",
		"steps", machine.Steps,
		"exit", code,
	)
	return code
}

func writeSnapshot(path string, machine *bfvm.Machine) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	if err := machine.Snapshot(f); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
