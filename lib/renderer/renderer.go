package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var tplFS embed.FS

// templates parses every embedded template once, on first use.
var templates = sync.OnceValues(func() (*template.Template, error) {
	return template.New("").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(tplFS, "templates/*.tmpl")
})

// Render executes the named template with data.
func Render(name TemplateName, data any) (string, error) {
	set, err := templates()
	if err != nil {
		return "", fmt.Errorf("parsing templates: %w", err)
	}
	t := set.Lookup(string(name))
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}
	return buf.String(), nil
}
