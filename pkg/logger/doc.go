// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors shared across the module.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies static attributes and wraps the result in
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record. This is how values stored in a context.Context, such as a
// state machine run identifier, end up on every line logged with that
// context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithEnvironment(environment.Development, "fsmdemo"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id := statemachine.RunIDFromContext(ctx)
//	        return logger.RunID(id), id != ""
//	    }),
//	)
//
//	log.LogAttrs(ctx, slog.LevelDebug, "transition",
//	    logger.FromState("A"),
//	    logger.ToState("B"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
