// Package logging builds the slog logger used across inkreel: a terse
// console handler for interactive runs and a JSON handler for machine
// consumption, with an optional append-only log file under the log dir.
package logging
