package main

// Config holds the complete configuration for one es6to5 invocation. It
// maps directly to command-line flags, following the teacher's
// single-struct-one-field-per-flag shape.
type Config struct {
	// Paths are the source files to convert.
	Paths []string `arg:"" optional:"" help:"Source files to convert." type:"path"`

	// LanguageOut selects the target dialect: "es5" (default) or "es3".
	LanguageOut string `name:"language-out" help:"Target dialect: 'es5' or 'es3'." default:"es5" enum:"es5,es3"`

	// DryRun prints a unified diff to stdout instead of rewriting files.
	DryRun bool `name:"dry-run" help:"Print a diff to stdout instead of rewriting files."`

	// Report selects a machine-readable summary format, or "" for none.
	Report string `name:"report" help:"Emit a run summary in this format after converting. Only 'json' is supported." enum:",json"`

	// Config points at an optional YAML file whose values are merged
	// underneath these flags.
	Config string `name:"config" help:"Path to a YAML config file merged underneath these flags." type:"path"`
}
