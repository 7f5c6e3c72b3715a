// Package docspan provides the structural-document engine used to clean
// position-indexed documents and to locate template fields inside them.
// It removes noise regions from a document while keeping every other span
// pointed at the same content, rebuilds a structure tree from the surviving
// spans, and evaluates a small CSS-like path language over that tree.
//
// This package contains domain types, the pure engine algorithms and the
// service interfaces, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, bloom/).
package docspan
