// Package snapshot writes key -> slug lookup tables to disk.
//
// A snapshot is a flat YAML mapping in block style with keys sorted
// byte-wise and two-space indentation, so equal mappings always produce
// identical files and successive runs diff cleanly:
//
//	https://github.com/uniswap: uniswap
//	https://github.com/uniswap/v3-core: uniswap
//
// Files are written to a temporary sibling and renamed into place.
package snapshot
