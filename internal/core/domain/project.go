package domain

import (
	"slices"
	"strings"
)

// GithubURLPrefix is the prefix a repository URL must carry to be mapped.
const GithubURLPrefix = "https://github.com/"

// Project is one registry record loaded from a project YAML file.
//
// Only the keys below are recognized; anything else in the document is
// ignored. A file that failed to parse is represented by the zero Project.
type Project struct {
	Slug       string            `yaml:"slug"`
	Blockchain []BlockchainEntry `yaml:"blockchain"`
	Github     []GithubEntry     `yaml:"github"`
}

// IsEmpty reports whether the record can contribute to any mapping.
func (p *Project) IsEmpty() bool {
	return p == nil || p.Slug == ""
}

// BlockchainEntry is a deployed address and the chains it lives on.
type BlockchainEntry struct {
	Networks []string `yaml:"networks"`
	Address  string   `yaml:"address"`
}

// HasNetwork reports whether chain is listed in the entry's networks.
func (e BlockchainEntry) HasNetwork(chain string) bool {
	return slices.Contains(e.Networks, chain)
}

// GithubEntry is a repository or organization URL.
type GithubEntry struct {
	URL string `yaml:"url"`
}

// IsGithub reports whether the entry points at github.com.
func (e GithubEntry) IsGithub() bool {
	return e.URL != "" && strings.HasPrefix(e.URL, GithubURLPrefix)
}
