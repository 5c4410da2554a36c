package middleware

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	CtxKeyStore     contextKey = "store"
	CtxKeySettings  contextKey = "settings"
	CtxKeyRunner    contextKey = "runner"
	CtxKeyPrompter  contextKey = "prompter"
	CtxKeyIdentity  contextKey = "identity"
	CtxKeyInspector contextKey = "inspector"
)

type CommandFactory func() *cobra.Command

type MiddlewareFunc func(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error

type MiddlewareChain func(factory CommandFactory) CommandFactory

type contextKey string

// UseMiddlewareChain wraps a CommandFactory so the middlewares run, in order,
// as the command's PreRunE. A middleware that returns without calling next
// stops the command before RunE.
func UseMiddlewareChain(middlewares ...MiddlewareFunc) MiddlewareChain {
	mwCopy := make([]MiddlewareFunc, len(middlewares))
	copy(mwCopy, middlewares)
	mwLen := len(mwCopy)

	return func(factory CommandFactory) CommandFactory {
		return func() *cobra.Command {
			cmd := factory()
			orig := cmd.PreRunE

			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				var chain func(int) error
				chain = func(i int) error {
					if i >= mwLen {
						if orig != nil {
							return orig(c, a)
						}
						return nil
					}
					return mwCopy[i](c, a, func(_ *cobra.Command, _ []string) error {
						return chain(i + 1)
					})
				}
				return chain(0)
			}
			return cmd
		}
	}
}

// Provide stores val under key unless the command context already holds one,
// so tests can inject their own collaborators before Execute.
func Provide(cmd *cobra.Command, key contextKey, val any) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Value(key) != nil {
		return
	}
	cmd.SetContext(context.WithValue(ctx, key, val))
}

// With returns ctx carrying val under key.
func With(ctx context.Context, key contextKey, val any) context.Context {
	return context.WithValue(ctx, key, val)
}

func Get[T any](cmd *cobra.Command, key contextKey) (T, error) {
	var zero T

	ctx := cmd.Context()
	if ctx == nil {
		return zero, fmt.Errorf("command context is nil")
	}

	val := ctx.Value(key)
	if val == nil {
		return zero, fmt.Errorf("context value %q is nil", key)
	}

	casted, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("context value %q has wrong type: %T", key, val)
	}

	return casted, nil
}
