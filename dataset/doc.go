// Package dataset converts raw problem records into trajectory-ready rows
// and persists them as Parquet splits.
//
// A [Record] is one problem as dumped from an upstream source (JSONL). A
// [Row] is the prepared shape the rollout layer consumes: the conversation
// prompt, the tools each trajectory needs instances of, and bookkeeping
// metadata. Nested fields (prompt, tools_kwargs, extra_info) are stored as
// JSON-encoded columns so the Parquet schema stays flat and stable.
//
// Split processing is fault-isolated: a split that fails to load or write
// is logged and skipped, and the run fails only when no split succeeded.
package dataset
