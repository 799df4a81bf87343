// Package config loads xfiles configuration.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (embedded/defaults.toml)
//  2. The user config file in the config directory: config.toml, config.yaml
//     or config.yml, whichever exists first
//  3. XFILES_* environment variables, with "_" separating key levels
//     (XFILES_STORE_DIR sets store.dir, XFILES_LOG_VERBOSITY sets log.verbosity)
//
// A missing user config file is not an error.
package config
