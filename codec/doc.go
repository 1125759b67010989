/*
Package codec persists trees as record stores.

A tree is saved by exporting its records and encoding them as a JSON array
or a YAML sequence of mappings. Loading decodes such a store and constructs
a tree from it. Encoding preserves field order and the kinds of values, so

    export → encode → decode → import

yields a tree of identical structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hier.codec'.
func tracer() tracing.Trace {
	return tracing.Select("hier.codec")
}
