// Package config implements the configuration resolution engine for the
// OIDC provider server.
//
// The engine turns a raw nested mapping loaded from a YAML or JSON file into
// a fully resolved, typed configuration object. Resolution is a pipeline of
// structural transforms:
//
//  1. [LoadRawConfig] selects a parser by file extension and returns the raw
//     tree.
//  2. [AddBasePath] rewrites relative file paths against a base directory.
//  3. [SetDomainAndPort] substitutes {domain}/{port} placeholders into
//     URI-valued fields.
//  4. [NewOPConfiguration] fills missing provider attributes from a static
//     default table and produces the typed provider configuration.
//  5. [NewConfiguration] builds the server-level configuration (logger,
//     webserver) and attaches nested entity configurations described by
//     [EntityDescriptor] values.
//  6. [NewView] gives read-only, mapping-like access over a built
//     configuration object.
//
// The engine performs structural transforms only. Subtrees of the shape
// {"class": ..., "kwargs": ...} or {"function": ..., "kwargs": ...} are
// passed through untouched; resolving those identifiers to constructors is
// the job of the component factory, outside this package.
//
// Process start parameters (config file path, base directory, domain, port)
// are assembled from environment variables and command-line flags by
// [GetParams].
package config
