// Package service provides the snapshot and reconciliation services.
//
// Services contain the mapping logic over domain models and define small
// interfaces for their IO dependencies (project source, snapshot writer,
// metrics), so they can be exercised without touching the filesystem.
//
// This package contains:
//
//   - MapAddressesToSlugs / MapReposToSlugs: corpus projections
//   - Generator: builds and writes the repo and address snapshots
//   - Reconciler: assigns a slug to each namespace of an external dataset
package service
