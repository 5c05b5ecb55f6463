// Package config defines the ossd configuration.
//
// This package contains:
//
//   - spec.go: Config struct and sections
//   - default.go: default values
//   - verify.go: validation
//   - loader.go: loading from file, environment and flags
//
// Example configuration file:
//
//	data:
//	  root: data/projects
//	snapshot:
//	  chain: mainnet
//	  lowercase: true
//	  repos: repo_snapshot.yaml
//	  addresses: address_snapshot.yaml
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  textfile: ""
package config
