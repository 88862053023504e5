// Package item defines the game item record exchanged by the admin service.
//
// Overview
//   - Item and Effects are the strongly typed wire representation used by the
//     HTTP API, the CLI and the upload pipeline.
//   - Validator checks candidate records in two passes: the raw JSON document is
//     matched against the embedded JSON Schema (schema/item.schema.json), then the
//     decoded value is checked with struct tags and the non-empty effects rule.
//   - ToPersisted and ToWire convert between the wire value and the database row,
//     where effects is stored as serialized JSON text.
//
// Conventions
//   - Effects is decoded exactly once, at the edge (Validator.Validate). Callers
//     never branch on whether effects arrived as an object or as a JSON string.
//   - DecodeBatch flattens an uploaded document (object or array) into candidates.
package item
