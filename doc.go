// Package rpgmap converts map assets between their JSON layout and the
// legacy object-tagged YAML document.
//
// [ToYAML] and [ToJSON] are inverse pipelines. Each call owns its own
// state, so conversions may run concurrently on different documents.
// Irregular input is repaired where possible and reported as a warning
// through the configured [log/slog.Logger]; only input that cannot be
// read at all produces an error.
package rpgmap
