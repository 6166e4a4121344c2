// Package truthtable reads and writes the "NxMxB" text format: a header
// line giving input count, output count and number base, followed by
// "x=>y" lines (each side written in that base). Entries the file omits
// are left as word.Undefined, so a partial table can flow straight into
// table.Complete.
package truthtable
