// Package writers turns result rows into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, JSONL).
//   • Apps only produce rows and push them down a channel.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
