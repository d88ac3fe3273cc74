// Package config defines the request specification consumed by the
// execution engine and loads named presets from TOML or YAML files.
//
// A preset file holds one table per preset:
//
//	[preset.api]
//	url = "https://api.example.com/users"
//	method = "POST"
//	headers = ["Accept: application/json"]
//	retry = 3
//	retry_delay = "500ms"
//
// Every field is optional; missing fields fall back to the built-in
// defaults. Explicit command-line values override preset values, which
// override the defaults.
package config
