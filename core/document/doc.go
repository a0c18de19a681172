// Package document provides whole-document storage for the tracker's JSON data.
//
// Both the enchantment catalog and the user state are single JSON documents.
// The Store interface exposes exactly two operations, Read and Write, where
// Write always replaces the complete document. There are no partial or
// row-level writes: a crash mid-write leaves either the old or the new
// snapshot, never a corrupt hybrid.
//
// # Drivers
//
//   - file: documents live under a root directory; writes go through a temp
//     file in the same directory followed by an atomic rename.
//   - s3: documents live in an S3/MinIO bucket (core/storage); an object PUT
//     replaces the object in a single operation.
//
// Missing documents surface as ErrNotExist so callers can distinguish
// first-run bootstrap from real I/O failures.
package document
