package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output to the request-scoped slog logger and records
// statement latency.
type queryLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newQueryLogger(base *slog.Logger, debug bool) *queryLogger {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	return &queryLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level

	return &cp
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log(ctx).InfoContext(ctx, "GORM info", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log(ctx).WarnContext(ctx, "GORM warn", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log(ctx).ErrorContext(ctx, "GORM error", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

// Trace observes every statement. Missing rows are an expected outcome for lookups
// and are not logged as failures.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	outcome := "ok"
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		outcome = "error"
	case l.slow > 0 && elapsed > l.slow:
		outcome = "slow"
	}
	metrics.DBQueryDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	if l.level == gormlogger.Silent {
		return
	}

	query := func() []slog.Attr {
		sql, rows := fc()

		return []slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}
	}

	switch {
	case outcome == "error" && l.level >= gormlogger.Error:
		attrs := append(query(), slog.Any("error", err))
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case outcome == "slow" && l.level >= gormlogger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", query()...)
	case l.level >= gormlogger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Query", query()...)
	}
}
