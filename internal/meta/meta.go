// Where: internal/meta/meta.go
// What: Tool-local metadata constants.
// Why: Keep naming and environment prefixes in one place.
package meta

const (
	// Project Identity
	AppName   = "clear-lambda-storage"
	EnvPrefix = "CLEAR_LAMBDA_STORAGE"

	// Directory Layout
	HomeDir        = ".clear-lambda-storage"
	ConfigFileName = "config.yaml"

	// Environment variable suffixes recognized by the CLI and the
	// Lambda-deployable handler (prefixed with EnvPrefix + "_").
	EnvSuffixConfigPath    = "CONFIG_PATH"
	EnvSuffixNumToKeep     = "NUM_TO_KEEP"
	EnvSuffixRegions       = "REGIONS"
	EnvSuffixFunctionNames = "FUNCTION_NAMES"
	EnvSuffixDryRun        = "DRY_RUN"
)

// EnvKey builds a fully prefixed environment variable name.
// Example: EnvKey(EnvSuffixNumToKeep) returns "CLEAR_LAMBDA_STORAGE_NUM_TO_KEEP".
func EnvKey(suffix string) string {
	return EnvPrefix + "_" + suffix
}
