package domain

import "strings"

// Manifest is the subset of a Custom Elements Manifest that the rules read.
type Manifest struct {
	SchemaVersion string   `json:"schemaVersion"`
	Readme        string   `json:"readme,omitempty"`
	Modules       []Module `json:"modules"`
}

// Module is one JavaScript module described by the manifest.
type Module struct {
	Kind               string        `json:"kind,omitempty"`
	Path               string        `json:"path"`
	TypeDefinitionPath string        `json:"typeDefinitionPath,omitempty"`
	Declarations       []Declaration `json:"declarations,omitempty"`
	Exports            []Export      `json:"exports,omitempty"`
}

// ExportKindDefinition marks an export that registers a custom element.
const ExportKindDefinition = "custom-element-definition"

// Export is a module export record.
type Export struct {
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Declaration *Reference `json:"declaration,omitempty"`
}

// Reference points at a declaration, possibly in another module.
type Reference struct {
	Name    string `json:"name"`
	Module  string `json:"module,omitempty"`
	Package string `json:"package,omitempty"`
}

// Declaration is a class, function, variable or mixin declared in a module.
// Declarations with CustomElement set are components.
type Declaration struct {
	Kind          string        `json:"kind"`
	Name          string        `json:"name"`
	CustomElement bool          `json:"customElement,omitempty"`
	TagName       string        `json:"tagName,omitempty"`
	Members       []ClassMember `json:"members,omitempty"`
	Events        []Event       `json:"events,omitempty"`
}

// IsComponent reports whether the declaration defines a custom element.
func (d Declaration) IsComponent() bool { return d.CustomElement }

const (
	MemberKindField  = "field"
	MemberKindMethod = "method"
)

// ClassMember is a field or method on a class declaration.
type ClassMember struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name"`
	Static     bool        `json:"static,omitempty"`
	Privacy    string      `json:"privacy,omitempty"`
	Type       *Type       `json:"type,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// Parameter is a method parameter.
type Parameter struct {
	Name     string `json:"name"`
	Type     *Type  `json:"type,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Event is an event a component dispatches.
type Event struct {
	Name string `json:"name,omitempty"`
	Type *Type  `json:"type,omitempty"`
}

// Type holds the textual type annotation of a member, parameter or event.
type Type struct {
	Text string `json:"text"`
}

// TypeText returns the annotation text, or "" when t is nil.
func (t *Type) TypeText() string {
	if t == nil {
		return ""
	}
	return t.Text
}

// PublicProperties returns the fields visible to consumers of the component:
// non-static, not private or protected, and not named with a leading # or _.
func (d Declaration) PublicProperties() []ClassMember {
	return d.publicMembers(MemberKindField)
}

// PublicMethods returns the methods visible to consumers of the component.
func (d Declaration) PublicMethods() []ClassMember {
	return d.publicMembers(MemberKindMethod)
}

func (d Declaration) publicMembers(kind string) []ClassMember {
	var out []ClassMember
	for _, m := range d.Members {
		if m.Kind != kind || m.Static {
			continue
		}
		if m.Privacy == "private" || m.Privacy == "protected" {
			continue
		}
		if strings.HasPrefix(m.Name, "#") || strings.HasPrefix(m.Name, "_") {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ExportedNames returns the declaration names exported by the module, in
// export order. Exports without a declaration reference are skipped.
func (m Module) ExportedNames() []string {
	names := make([]string, 0, len(m.Exports))
	for _, e := range m.Exports {
		if e.Declaration == nil || e.Declaration.Name == "" {
			continue
		}
		names = append(names, e.Declaration.Name)
	}
	return names
}

// PackageDescriptor is the subset of package.json that the rules read.
// Exports and Browser keep their raw JSON shape since both may be a
// string or an object.
type PackageDescriptor struct {
	Name           string   `json:"name,omitempty"`
	Type           string   `json:"type,omitempty"`
	Main           string   `json:"main,omitempty"`
	Module         string   `json:"module,omitempty"`
	Types          string   `json:"types,omitempty"`
	Exports        any      `json:"exports,omitempty"`
	Browser        any      `json:"browser,omitempty"`
	CustomElements string   `json:"customElements,omitempty"`
	Files          []string `json:"files,omitempty"`
}

// HasEntryPointMap reports whether the package declares an exports or
// browser field, in which case legacy main/types fields are not required.
func (p PackageDescriptor) HasEntryPointMap() bool {
	return Truthy(p.Exports) || Truthy(p.Browser)
}

// Truthy mirrors JavaScript truthiness for decoded JSON values.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}
