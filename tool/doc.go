// Package tool defines the lifecycle contract shared by all agent-facing
// tools and the supporting infrastructure for dispatching to them.
//
// A tool exposes an isolated, stateful instance per trajectory. The
// orchestrator drives each instance through a fixed lifecycle:
//
//	id, obs, err := t.Create(ctx, tool.CreateOptions{})
//	resp, err := t.Execute(ctx, id, map[string]any{"query": "..."})
//	reward, err := t.CalcReward(ctx, id)
//	err = t.Release(ctx, id)
//
// The package provides three building blocks:
//
//   - [Tool]: the polymorphic capability interface implemented per tool kind
//   - [InstanceStore]: a concurrent map of per-trajectory instance state,
//     owned exclusively by one tool
//   - [Registry]: resolves a tool name from a model's function call to the
//     matching [Tool], fixed at startup
//
// # Schemas
//
// Every tool carries an immutable [Schema] in the function-call wire format
// the calling model parses. Schemas are validated once at registration;
// a malformed schema fails fast with [ErrSchemaInvalid] before any
// trajectory starts.
//
// # Instance identifiers
//
// Instance identifiers are opaque tokens scoping tool state to one
// trajectory's use of one tool. An identifier returned by Create must be
// presented to the same tool for Execute/CalcReward/Release; an unknown
// identifier is [ErrInstanceNotFound], never silently created state.
// Release is strict: releasing the same identifier twice returns
// [ErrInstanceNotFound].
package tool
