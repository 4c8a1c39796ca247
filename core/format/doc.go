// File: doc.go
// Title: Message Format Package Documentation
// Description: Package format compiles MessageFormat-style message patterns and
//              renders their arguments through a type-based formatter registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

/*
Package format compiles message patterns and renders arguments.

Pattern syntax:

	text        literal text
	''          a single quote
	'{text}'    quoted literal, braces are not interpreted
	{0}         argument 0, rendered through the Registry
	{0,number}  localised number; styles integer, percent or a #,##0.00 pattern
	{0,date}    time.Time; styles short, medium, long, full or a Go layout
	{0,time}    as date with time styles
	{0,choice,0#no items|1#one item|1<{0,number,integer} items}

Arguments missing at render time are written as {n}.

Registry lookup order for an argument of type T:

 1. exact formatter registered for T
 2. interface formatters, custom ones first, then reflect.Type, error, fmt.Stringer
 3. kind formatters (strings are quoted, numbers localised, slices as [a, b],
    maps as {k: v} sorted by key, pointers dereferenced)
 4. fmt's %v

Use Text for values that must be written verbatim and Char for runes that
should not render as numbers.

Example:

	p, err := format.Compile("{0} has {1,choice,0#no entries|1#one entry|1<{1} entries}", language.English)
	if err != nil {
		return err
	}
	msg := p.Format(nil, format.Text("cart"), 3)   // cart has 3 entries
*/
package format
