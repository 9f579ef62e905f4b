// Package configs manages rsatrace's configuration file.
//
// Configuration is stored in TOML format at:
//
//	$XDG_CONFIG_HOME/rsatrace/config.toml
//
// The location can be overridden with the --config flag or the
// RSATRACE_CONFIG environment variable. A missing file is not an error: the
// defaults are used instead.
//
// # Contents
//
//	[keys]
//	mode = "fixed"      # or "random"
//	prime_low = 11      # random mode samples primes in [prime_low, prime_high)
//	prime_high = 100
//	seed = 0            # 0 seeds from the clock
//
//	[output]
//	transcript = ""     # optional JSONL export of every sent message
//
// Values given on the command line take precedence over the file.
package configs
