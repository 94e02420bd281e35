// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/interp"
)

type (
	// HandlerContext provides the execution environment for a command.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the directory relative source paths are resolved against.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// OSHandlerContext returns a HandlerContext bound to the process streams,
// environment and working directory.
func OSHandlerContext() *HandlerContext {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &HandlerContext{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
	}
}

// ExtractHandlerContext extracts the HandlerContext from mvdan/sh's context.
// This bridges the shell interpreter's exec handlers to textr commands.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	out := &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		// expand.Variable.Set indicates if the variable was set.
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
	}

	// The interpreter leaves unset streams nil.
	if out.Stdin == nil {
		out.Stdin = strings.NewReader("")
	}
	if out.Stdout == nil {
		out.Stdout = io.Discard
	}
	if out.Stderr == nil {
		out.Stderr = io.Discard
	}
	return out
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// If the context was created with WithHandlerContext, it returns that value.
// Otherwise, it extracts from mvdan/sh's handler context.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return ExtractHandlerContext(ctx)
}
