// Package commands wires the stepform CLI: the interactive registration
// wizard plus helpers to inspect, export and clear the stored submission.
package commands
