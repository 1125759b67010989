/*
Package record implements flat records: ordered mappings from field names to
scalar or array values.

Records are the exchange format between a tree and the outside world.
A typical source of records is a database query result having key columns
aliased to "id" and "parentId". Every other field is opaque payload,
carried along unchanged.

Values are tagged. A value is either null, a bool, an integer, a float,
a string or an array of values. Comparison between values is "natural":
numeric if both sides are numeric (including strings which look like
numbers), lexical otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package record

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// Reserved field names.
const (
	IDField       = "id"
	ParentIDField = "parentId"
)

// tracer traces with key 'hier.record'.
func tracer() tracing.Trace {
	return tracing.Select("hier.record")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hier.record: "+msg, msgargs...)
		panic(msg)
	}
}
