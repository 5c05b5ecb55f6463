// Package output renders command results for the ossd CLI.
//
// Formatters support table, json and yaml. A namespace resolution keeps its
// ranking order in every format; unresolved namespaces render as null.
package output
