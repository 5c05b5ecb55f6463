// Package main provides the entry point for ossd.
//
// ossd builds lookup snapshots from the OSS Directory project registry and
// reconciles Dune Analytics namespaces against it:
//
//   - Repository URL -> slug snapshot
//   - Address -> slug snapshot for one network
//   - Namespace -> slug reconciliation of a Dune export
//
// Usage:
//
//	ossd snapshot
//	ossd snapshot addresses --chain optimism --out optimism.yaml
//	ossd reconcile --dataset dune.json -o yaml
package main
