// Package tables locates header rows in extracted cell grids.
//
// Schedule documents surround their data tables with titles, notes, and
// decorative rows, so the first step of any table parse is finding the
// row that actually names the columns. A [Locator] scans a grid of cell
// strings top to bottom against named keyword groups and returns the
// first row whose matched fields satisfy a caller-supplied predicate,
// together with a field-to-column index map.
//
// Matching is exact literal substring matching on the raw cell text,
// not normalized: direction-mangled documents store header keywords in
// presentation forms, so keyword groups carry those variants
// explicitly.
package tables
