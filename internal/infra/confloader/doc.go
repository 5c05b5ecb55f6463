// Package confloader provides the configuration loading mechanism.
//
// It wraps koanf to merge configuration from several sources into a
// typed struct with koanf tags.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (OSSD_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Values already present in the target struct (defaults)
package confloader
