package service

import (
	"strings"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

// MapOptions controls key normalization.
type MapOptions struct {
	// Lowercase lowercases keys. For repository URLs it also trims
	// surrounding slashes.
	Lowercase bool
}

// DefaultMapOptions returns the options used unless the caller asks for raw keys.
func DefaultMapOptions() MapOptions {
	return MapOptions{Lowercase: true}
}

// MapAddressesToSlugs maps every address deployed on chain to its project slug.
//
// Records without a slug are skipped, as are entries whose networks do not
// include chain or that carry no address. When two entries produce the
// same key the later record wins.
func MapAddressesToSlugs(projects []domain.Project, chain string, opts MapOptions) map[string]string {
	addresses := make(map[string]string)
	for i := range projects {
		p := &projects[i]
		if p.IsEmpty() {
			continue
		}
		for _, entry := range p.Blockchain {
			if !entry.HasNetwork(chain) || entry.Address == "" {
				continue
			}
			addresses[normalizeAddress(entry.Address, opts)] = p.Slug
		}
	}
	return addresses
}

// MapReposToSlugs maps every github.com URL to its project slug.
//
// Only URLs starting with https://github.com/ are considered. When two
// entries produce the same key the later record wins.
func MapReposToSlugs(projects []domain.Project, opts MapOptions) map[string]string {
	repos := make(map[string]string)
	for i := range projects {
		p := &projects[i]
		if p.IsEmpty() {
			continue
		}
		for _, entry := range p.Github {
			if !entry.IsGithub() {
				continue
			}
			repos[normalizeRepoURL(entry.URL, opts)] = p.Slug
		}
	}
	return repos
}

func normalizeAddress(addr string, opts MapOptions) string {
	if opts.Lowercase {
		return strings.ToLower(addr)
	}
	return addr
}

func normalizeRepoURL(url string, opts MapOptions) string {
	if opts.Lowercase {
		return strings.Trim(strings.ToLower(url), "/")
	}
	return url
}
