package core

import "strings"

// Unit is the structured builder for one generated source unit: an
// ordered list of declarations plus a deduplicated import set. Keeping
// the structure explicit separates formatting from semantic content.
type Unit struct {
	Package string
	header  []string
	imports map[string]struct{}
	decls   []string
}

func NewUnit(pkg string) *Unit {
	return &Unit{Package: pkg, imports: map[string]struct{}{}}
}

func (u *Unit) AddHeader(line string) {
	u.header = append(u.header, line)
}

func (u *Unit) AddImports(imports []string) {
	for _, name := range imports {
		if strings.TrimSpace(name) == "" {
			continue
		}
		u.imports[name] = struct{}{}
	}
}

func (u *Unit) AddDeclaration(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	u.decls = append(u.decls, text)
}

// Render produces the unit text: header comments, package clause, the
// import section in sorted order, then declarations separated by blank
// lines. Output is byte-identical across runs for identical input.
func (u *Unit) Render() string {
	var builder strings.Builder
	for _, line := range u.header {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	if len(u.header) > 0 {
		builder.WriteString("\n")
	}
	builder.WriteString("package ")
	builder.WriteString(u.Package)
	builder.WriteString("\n")
	if len(u.imports) > 0 {
		builder.WriteString("\n")
		for _, name := range sortedImports(u.imports) {
			builder.WriteString("import ")
			builder.WriteString(name)
			builder.WriteString("\n")
		}
	}
	for _, decl := range u.decls {
		builder.WriteString("\n")
		builder.WriteString(decl)
		builder.WriteString("\n")
	}
	return builder.String()
}
