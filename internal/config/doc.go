// Package config loads and validates the inkreel TOML configuration.
//
// Resolution order: an explicit --config path, then
// ~/.config/inkreel/config.toml, then ./inkreel.toml. A missing file is not
// an error; defaults apply.
package config
