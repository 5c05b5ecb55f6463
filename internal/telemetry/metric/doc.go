// Package metric records run statistics as Prometheus metrics.
//
// The tools run as batch jobs, so metrics are not served over HTTP.
// Instead the registry is written once per run in the text exposition
// format, ready for node_exporter's textfile collector:
//
//	ossd snapshot --metrics-textfile /var/lib/node_exporter/ossd.prom
//
// Metrics:
//
//   - ossd_corpus_files_total: project files read
//   - ossd_corpus_parse_errors_total: project files that failed to parse
//   - ossd_snapshot_entries{snapshot}: entries in the last written snapshot
//   - ossd_namespaces{state}: resolved and unresolved namespaces
//   - ossd_last_run_timestamp_seconds: completion time of the run
package metric
