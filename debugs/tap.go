package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/reusee/bfi/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL on stdin with globals predeclared.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, predeclared(globals))
	}
}

// Script runs src non-interactively. print() writes to out.
type Script func(ctx context.Context, what string, src string, globals map[string]any, out io.Writer) error

func (Module) Script(
	logger logs.Logger,
) Script {
	return func(ctx context.Context, what string, src string, globals map[string]any, out io.Writer) error {
		logger.InfoContext(ctx, "tap script: "+what)

		thread := &starlark.Thread{
			Name: "script",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		_, err := starlark.ExecFileOptions(fileOptions, thread, what, src, predeclared(globals))
		if err != nil {
			return fmt.Errorf("tap script %s: %w", what, err)
		}
		return nil
	}
}

func predeclared(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict)
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
