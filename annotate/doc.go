// Package annotate decorates a leveled log sink so that duration reports
// produced by a profiler name the code that triggered them.
//
// # Duration Reports
//
// A duration report is a message of the form
//
//	<label>(<number> <unit>)<rest>
//
// such as "User Load (0.3ms)  SELECT ..." or "Query (0.002 seconds)  SELECT 1",
// optionally wrapped in terminal color sequences. [Match] recognizes the
// shape and [ParseReport] splits it into its parts.
//
// # Decorating a Sink
//
// [New] wraps any [Sink] (for example a [log.Logger]) and a [Collector] that
// knows the current call site:
//
//	sink := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger := annotate.New(sink, annotate.Static("app/models/user.rb:42"))
//
//	logger.Info("Query (0.002 seconds)  SELECT 1")
//	// msg="Query (0.002 seconds)  SELECT 1 CALLED BY 'app/models/user.rb:42'"
//
//	logger.Warn("plain text") // forwarded unchanged
//
// Messages below the sink's level are dropped before anything else happens:
// message funcs are not called and the collector is not queried.
//
//	logger.DebugFunc("db", func() any { return expensiveDump() })
//
// # Highlighting
//
// [WithHighlight] supplies the configuration flag that decides, per message,
// whether the location is highlighted. The default highlight is a fixed SGR
// sequence (see [Format]); [WithHighlighter] and [StyleHighlighter] replace
// it with a lipgloss style:
//
//	logger := annotate.New(sink, collector,
//		annotate.WithHighlight(sink.Pretty),
//		annotate.WithHighlighter(annotate.StyleHighlighter(
//			lipgloss.NewStyle().Foreground(lipgloss.Color("5")))))
//
// # Errors
//
// The decorator never creates errors of its own. Errors returned by the sink
// are passed back to the caller unchanged.
package annotate
