// Package config loads the settings of both binaries.
//
// The server merges three layers, each overriding the non-zero fields of the
// one before: environment (a .env file is loaded first when present),
// command-line flags, then the JSON file named by -c or CONFIG. Defaults are
// applied to the merged result and it is validated before [GetStructuredConfig]
// returns it. A bare DATABASE_URL, as set by hosting platforms, is accepted
// and normalised.
//
// The notifier CLI uses [GetNotifierConfig]: NOTIFIER_-prefixed variables and
// flags, no config file.
package config
