// Package cli implements the wheel command-line interface.
//
// # Command Structure
//
// The root command is "wheel":
//
//	wheel              - Spin interactively (headless round when piped)
//	wheel spin         - Same as wheel with no command
//	wheel simulate     - Spin on a virtual clock and print the results
//	wheel init         - Write a default .wheel.yaml
//	wheel version      - Print build information
//
// # Flag Handling
//
// Global flags (--config, --seed, --no-color, --verbose) are defined on the
// root command. loadSettings merges them with the config file into a
// settings value that every command starts from.
//
// The interactive command needs a terminal on stdout. When there is none,
// it falls back to the same runner as "wheel simulate --rounds 1".
package cli
