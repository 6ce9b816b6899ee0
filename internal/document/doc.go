// Package document defines the JSON artifacts handed between pipeline stages
// and the helpers that read and write them.
//
// Each stage owns one document shape: the load stage emits a LoadedDataset,
// the process stage emits a ProcessedDataset, and the analyze stage emits an
// AnalysisReport. Documents are written once as pretty-printed UTF-8 JSON and
// read at most once by the following stage. Readers fail fast when required
// fields are absent instead of defaulting them.
package document
