package domain

import "slices"

// AddressDetails describes one address inside a namespace of the dataset.
type AddressDetails struct {
	Networks []string `yaml:"networks" json:"networks"`
	Slug     string   `yaml:"slug,omitempty" json:"slug,omitempty"`
}

// HasNetwork reports whether chain is listed in the address networks.
func (d AddressDetails) HasNetwork(chain string) bool {
	return slices.Contains(d.Networks, chain)
}

// NamespaceDataset maps namespace -> address -> details.
type NamespaceDataset map[string]map[string]AddressDetails

// NamespaceSlug is the outcome for a single namespace.
type NamespaceSlug struct {
	Namespace    string `json:"namespace" yaml:"namespace"`
	Slug         string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Resolved     bool   `json:"resolved" yaml:"resolved"`
	AddressCount int    `json:"address_count" yaml:"address_count"`
}

// Resolution is the ordered result of reconciling a dataset.
// Entries are ranked by AddressCount, highest first.
type Resolution []NamespaceSlug

// Get returns the entry for namespace.
func (r Resolution) Get(namespace string) (NamespaceSlug, bool) {
	for _, ns := range r {
		if ns.Namespace == namespace {
			return ns, true
		}
	}
	return NamespaceSlug{}, false
}

// Resolved returns the number of namespaces that were assigned a slug.
func (r Resolution) Resolved() int {
	n := 0
	for _, ns := range r {
		if ns.Resolved {
			n++
		}
	}
	return n
}
