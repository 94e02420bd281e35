// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"io"

	"github.com/u-root/u-root/pkg/core"
	"github.com/u-root/u-root/pkg/core/cat"
)

// configureCommand binds a u-root core.Command to the handler context,
// replacing its standard streams with in and out.
func configureCommand(hc *HandlerContext, cmd core.Command, in io.Reader, out io.Writer) {
	cmd.SetIO(in, out, hc.Stderr)
	cmd.SetWorkingDir(hc.Dir)
	cmd.SetLookupEnv(hc.LookupEnv)
}

// copyThroughCat copies in to out with u-root's cat, which reads its
// standard input when run without operands.
func copyThroughCat(ctx context.Context, hc *HandlerContext, in io.Reader, out io.Writer) error {
	cmd := cat.New()
	configureCommand(hc, cmd, in, out)
	return cmd.RunContext(ctx)
}
