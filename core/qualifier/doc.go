/*
Package qualifier parses font qualifier strings.

A font qualifier string is the compact textual encoding used by the RISC OS
font manager to describe a font name together with optional rendering
qualifiers. The name is followed by backslash-tagged fields, e.g.

   Homerton.Medium\ELatin1\M65536 0 0 65536 0 0

Package qualifier covers three operations of the font manager's string
contract:

▪︎ Parse turns a font string into an ordered QualifierSet, the processing
used by Font_FindFont.

▪︎ QualifierSet.ApplyFields merges the qualifiers of a second font string
onto a set, with empty fields removing qualifiers: the processing used by
Font_ApplyFields.

▪︎ FindField locates the byte offset of a qualifier in an unparsed string,
as offset queries have to answer relative to the caller's original bytes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package qualifier

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontq.qualifier'
func tracer() tracing.Trace {
	return tracing.Select("fontq.qualifier")
}
