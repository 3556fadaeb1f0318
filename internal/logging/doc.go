// Package logger provides line logging for kitlog and the programs that
// embed it.
//
// # KitLogger
//
// A KitLogger builds one output line from appended values and emits it
// when closed:
//
//	line := logger.New()
//	defer line.Close()
//	line.Append("deployed ").Append(count).Append(" services in ").Append(elapsed)
//
// A disabled logger (NewKitLogger(false)) ignores appends and never
// writes. Passing Endl to Append emits the pending line immediately and
// starts a new one on the same logger. Every emitted line starts with the
// logger's prefix, "[DeployKit]" unless another one is given.
//
// # Verbosity Levels
//
// The leveled Logger is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug and error details
//
// Warnings are always shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Processing %d files", count)
//
// Commands create the logger in the root command's PersistentPreRunE.
package logger
