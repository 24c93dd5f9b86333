// Package embedded ships the sample shop catalog compiled into the binary.
// The mock server serves it when no catalog file is configured, and it keeps
// `larek serve` usable offline.
package embedded

import "embed"

// CatalogPath is the sample catalog location inside FS.
const CatalogPath = "catalog/products.yaml"

// FS embeds the sample catalog at build time.
//
//go:embed catalog/products.yaml
var FS embed.FS
