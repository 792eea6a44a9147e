package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/holidaze/holidaze-cli/pkg/logger"
)

// runPage is the command-side equivalent of a page's state machine: enter
// loading, settle the fetch, then either render the ready state or surface
// the classified error. The fetch runs under the command's context, so an
// interrupted command cancels its in-flight request instead of leaking it.
func runPage[T any](cmd *cobra.Command, name string, fetch func(ctx context.Context) (T, error), render func(w io.Writer, data T) error) error {
	logger.Debug("page loading", zap.String("page", name))

	data, err := fetch(cmd.Context())
	if err != nil {
		logger.Debug("page error", zap.String("page", name), zap.Error(err))
		return err
	}

	logger.Debug("page ready", zap.String("page", name))
	return render(cmd.OutOrStdout(), data)
}
