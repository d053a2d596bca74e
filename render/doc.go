// Package render turns a grid and an optional path into text.
//
// Render writes one line per grid row: walls use Glyphs.Wall, open cells on
// the path use Glyphs.Path, every other open cell uses Glyphs.Open.
// FormatPath prints a path as "(row,col)" tuples separated by spaces.
//
// Nothing here touches os.Stdout; callers choose the writer.
package render
