// Package io reads and writes release item manifests.
//
// # Overview
//
// A manifest lists the items of a release together with the names each item
// requires. It is the input of the ordering pipeline and can be written as
// JSON, YAML or TOML:
//
//	{
//	  "items": [
//	    {"name": "openejb-api"},
//	    {"name": "openejb-core", "requires": ["openejb-api"], "summary": "Core container"}
//	  ]
//	}
//
//	items:
//	  - name: openejb-api
//	  - name: openejb-core
//	    requires: [openejb-api]
//
//	[[items]]
//	name = "openejb-api"
//
//	[[items]]
//	name = "openejb-core"
//	requires = ["openejb-api"]
//
// # Item Fields
//
// Required:
//   - name: Unique identifier other items refer to
//
// Optional:
//   - requires: Names of items that must come first, in declaration order
//   - summary: One-line description, shown in rendered graphs
//   - meta: Freeform object carried through untouched
//
// The order of items in the file is significant: it is the order the
// orderer preserves wherever references do not force a change.
//
// # Import
//
// Use [ImportManifest] to read a manifest from a file path (the format is
// taken from the extension unless given), or [ReadManifest] to read from any
// io.Reader. [Decode] exposes the same format handling for other documents.
//
// # Export
//
// Use [ExportManifest] or [WriteManifest] to write a manifest, and
// [WriteResult] to write the outcome of an ordering run as JSON.
package io
