/*
Package render produces views of trees: nested HTML lists, indented text
and GraphViz diagrams.

HTML views are driven by ASP-style templates. A template is a fragment of
markup containing placeholders of the form <%field%>, which are replaced by
the (escaped) value of the payload field of each node. Placeholders for
fields a node does not carry are left as they are.

    tmpl := `<a href="<%uri%>" target="_blank"><%text%></a>`
    err := render.HTML(os.Stdout, t, tmpl)

Every node is rendered as a list item of class "tree-node"; children are
nested in a list of their own, in children order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hier.render'.
func tracer() tracing.Trace {
	return tracing.Select("hier.render")
}
