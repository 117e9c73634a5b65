package providers

import (
	"context"
	"log/slog"

	"fantasy-intel-service/internal/logging"
)

// logWithProvider logs through a nil-safe logger, tagging the entry with the
// provider name so cache and upstream logs stay filterable per source.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
