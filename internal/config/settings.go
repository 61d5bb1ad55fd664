// Where: internal/config/settings.go
// What: Resolved run options and their validation rules.
// Why: One place where flags, file defaults, and environment agree on meaning.
package config

import (
	"fmt"
	"strings"
)

// DefaultNumToKeep is how many newest published versions survive a prune
// when nothing overrides it.
const DefaultNumToKeep = 2

// Settings carries every option a pruning run honors. Zero values mean
// "not set" except NumToKeep, which is always explicit.
type Settings struct {
	AccessKeyID     string
	SecretAccessKey string
	Profile         string
	Regions         []string
	NumToKeep       int
	FunctionNames   []string
	EndpointURL     string
	DryRun          bool
	AssumeYes       bool
}

// Default returns the settings a bare invocation runs with.
func Default() Settings {
	return Settings{NumToKeep: DefaultNumToKeep}
}

// Validate rejects contradictory or incomplete option combinations before
// any AWS call is made.
func (s Settings) Validate() error {
	if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
		return fmt.Errorf("--token-key-id and --token-secret must be provided together")
	}
	if s.AccessKeyID != "" && s.Profile != "" {
		return fmt.Errorf("an explicit token pair and --profile are mutually exclusive")
	}
	if s.NumToKeep < 0 {
		return fmt.Errorf("--num-to-keep must be zero or greater")
	}
	return nil
}

// FunctionNameSet returns the function filter as a set, or nil when every
// function is in scope.
func (s Settings) FunctionNameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.FunctionNames))
	for _, name := range s.FunctionNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
