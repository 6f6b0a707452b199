package render

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grafigo.render'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.render")
}

// expand substitutes every "{NAME}" or "{NAME/o}" placeholder in tmpl
// against ctx, emitting literal text verbatim otherwise. A direct scan is
// used rather than text/template: the placeholder set is small and fixed,
// and the "/o" inward-offset suffix has no natural text/template spelling
// without a custom FuncMap that would be more code than this pass.
func expand(tmpl string, ctx Context) string {
	var sb strings.Builder
	i := 0
	for i < len(tmpl) {
		if tmpl[i] != '{' {
			sb.WriteByte(tmpl[i])
			i++
			continue
		}
		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			sb.WriteString(tmpl[i:])
			break
		}
		token := tmpl[i+1 : i+end]
		sb.WriteString(expandToken(token, ctx))
		i += end + 1
	}
	return sb.String()
}

func expandToken(token string, ctx Context) string {
	name, offset := token, false
	if strings.HasSuffix(token, "/o") {
		name, offset = strings.TrimSuffix(token, "/o"), true
	}
	v, ok := ctx.resolve(name)
	if !ok {
		tracer().Errorf("render: unknown placeholder {%s}", token)
		return "{" + token + "}"
	}
	if offset {
		v = inward(v, anchors(ctx.Pt)["C"])
	}
	return v.String()
}
