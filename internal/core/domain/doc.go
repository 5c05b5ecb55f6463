// Package domain defines the core domain models for the OSS Directory tools.
//
// Domain models are plain value types with no IO dependencies:
//
//   - Project: a per-project registry record (slug, blockchain, github)
//   - NamespaceDataset: an external analytics export grouped by namespace
//   - Resolution: the ordered namespace to slug result of a reconcile run
//   - Errors: structured error definitions
package domain
