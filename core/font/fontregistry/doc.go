/*
Package fontregistry manages a registry of loaded fonts, keyed by RISC OS
font identifiers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontq.registry'
func tracer() tracing.Trace {
	return tracing.Select("fontq.registry")
}
