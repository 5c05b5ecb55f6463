// Package registry loads the project registry: a directory tree of
// per-project YAML records.
//
// Every file ending in ".yaml" below the root is decoded into a
// domain.Project. Malformed documents are logged and kept as far as they
// decode, so that one bad file never aborts a run.
//
// LoadDataset reads the namespace dataset that is reconciled against the
// registry.
package registry
