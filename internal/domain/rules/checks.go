package rules

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/cemlint/cemlint/internal/domain"
)

const (
	packagesDocs       = "https://nodejs.org/api/packages.html"
	manifestDocs       = "https://github.com/webcomponents/custom-elements-manifest?tab=readme-ov-file"
	modulePathResolver = "https://wc-toolkit.com/documentation/module-path-resolver/"
	npmFilesDocs       = "https://docs.npmjs.com/cli/v10/configuring-npm/package-json?v=true#files"
)

// Each check returns the failure message and true when the rule fails.
// Checks never consult severity; the aggregator does.

// PackageTypeFailure fails unless the package type is "module".
func PackageTypeFailure(packageType string) (string, bool) {
	if packageType != "module" {
		return "Package `type` is not 'module'. More information can be found at: " + packagesDocs + "#type.", true
	}
	return "", false
}

// MainFailure fails when main is missing or not a file path.
func MainFailure(main string) (string, bool) {
	return entryPointFailure("main", main)
}

// ModuleFailure fails when module is missing or not a file path.
func ModuleFailure(module string) (string, bool) {
	return entryPointFailure("module", module)
}

func entryPointFailure(field, value string) (string, bool) {
	if value == "" {
		return fmt.Sprintf("Missing `%s` property.", field), true
	}
	if !IsValidFilePath(value) {
		return fmt.Sprintf("Invalid file path is set to `%s` property. More information can be found at: %s#%s.", field, packagesDocs, field), true
	}
	return "", false
}

// TypesFailure fails when types is missing or not a file path.
func TypesFailure(types string) (string, bool) {
	if types == "" {
		return "The package.json is missing a `types` property. More information can be found at: " + packagesDocs + "#community-conditions-definitions.", true
	}
	if !IsValidFilePath(types) {
		return "Invalid file path is set to `types` property in the package.json. More information can be found at: " + packagesDocs + "#community-conditions-definitions", true
	}
	return "", false
}

// ExportsFailure fails when the exports field is falsy.
func ExportsFailure(exports any) (string, bool) {
	if !domain.Truthy(exports) {
		return "The package.json is missing an `exports` property. More information can be found at: " + packagesDocs + "#exports.", true
	}
	return "", false
}

// CustomElementsFailure fails when customElements is missing or not a file
// path.
func CustomElementsFailure(customElements string) (string, bool) {
	if customElements == "" {
		return "The package.json is missing the `customElements` property. You can find more information at: " + manifestDocs + "#referencing-manifests-from-npm-packages", true
	}
	if !IsValidFilePath(customElements) {
		return "Invalid file path is set to `customElements` property.", true
	}
	return "", false
}

// CEMPublishedFailure fails when the package publishes an explicit files
// list that includes neither the manifest nor the directory the
// customElements field points into. An empty files list or an unset
// customElements field never fails.
func CEMPublishedFailure(files []string, customElements, cemFileName string) (string, bool) {
	if len(files) == 0 {
		return "", false
	}
	for _, f := range files {
		if strings.HasSuffix(f, cemFileName) {
			return "", false
		}
	}
	if customElements == "" {
		return "", false
	}

	raw := strings.Replace(customElements, "./", "", 1)
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		dir := raw[:i+1]
		for _, f := range files {
			if strings.HasPrefix(dir, strings.Replace(f, "./", "", 1)) {
				return "", false
			}
		}
	}

	return "The package.json is missing the `custom-elements.json` file in the `files` property. More information can be found at: " + npmFilesDocs + ".", true
}

// SchemaVersionFailure fails when the schema version is missing or older
// than latest.
func SchemaVersionFailure(schemaVersion, latest string) (string, bool) {
	if schemaVersion == "" {
		return "The manifest is missing the `schemaVersion` property. For more information, check out: " + manifestDocs + "#schema-versioning", true
	}
	if !IsAtLeast(schemaVersion, latest) {
		return fmt.Sprintf("The manifest schema version is outdated. The latest version is %s. For more information, check out: %s#schema-versioning", latest, manifestDocs), true
	}
	return "", false
}

func isSourcePath(path string) bool {
	return strings.HasSuffix(path, ".ts") || strings.Contains(path, "src/")
}

// ModulePathFailure fails when a component's module path is missing, looks
// like a source path, or is not a file path.
func ModulePathFailure(component, modulePath string) (string, bool) {
	switch {
	case modulePath == "":
		return fmt.Sprintf("%s is missing a module path. For help updating this, check out: %s", component, modulePathResolver), true
	case isSourcePath(modulePath):
		return fmt.Sprintf("%s module path does not appear to reference the output path. For help updating this, check out: %s", component, modulePathResolver), true
	case !IsValidFilePath(modulePath):
		return fmt.Sprintf("%s module path is invalid. For help updating this, check out: %s", modulePath, modulePathResolver), true
	}
	return "", false
}

// DefinitionPathFailure fails when a component's definition path is
// missing, ends in .ts, does not contain a src/ segment, or is not a file
// path.
func DefinitionPathFailure(component, definitionPath string) (string, bool) {
	switch {
	case definitionPath == "":
		return fmt.Sprintf("%s is missing a definition path. For help updating this, check out: %s", component, modulePathResolver), true
	case strings.HasSuffix(definitionPath, ".ts") || !strings.Contains(definitionPath, "src/"):
		return fmt.Sprintf("%s definition path does not appear to reference the output path. For help updating this, check out: %s", component, modulePathResolver), true
	case !IsValidFilePath(definitionPath):
		return fmt.Sprintf("%s definition path is invalid. For help updating this, check out: %s", definitionPath, modulePathResolver), true
	}
	return "", false
}

// TypeDefinitionPathFailure is ModulePathFailure for the optional type
// definition path; an absent path passes.
func TypeDefinitionPathFailure(component, typeDefinitionPath string) (string, bool) {
	switch {
	case typeDefinitionPath == "":
		return "", false
	case isSourcePath(typeDefinitionPath):
		return fmt.Sprintf("%s type definition path does not appear to reference the output path. For help updating this, check out: %s", component, modulePathResolver), true
	case !IsValidFilePath(typeDefinitionPath):
		return fmt.Sprintf("%s type definition path is invalid. For help updating this, check out: %s", typeDefinitionPath, modulePathResolver), true
	}
	return "", false
}

// TagNameFailure fails when a component has no tag name.
func TagNameFailure(component, tagName string) (string, bool) {
	if tagName != "" {
		return "", false
	}
	msg := fmt.Sprintf("%s is missing a tag name. You can add one by using the `@tag` and `@tagName` JSDoc tag.", component)
	if suggestion := SuggestTagName(component); suggestion != "" {
		msg += fmt.Sprintf(" For example: `@tagName %s`.", suggestion)
	}
	return msg, true
}

// SuggestTagName derives a custom element name from a class name, e.g.
// "WaIconButton" becomes "wa-icon-button". Custom element names need a
// hyphen, so single-word names yield "".
func SuggestTagName(className string) string {
	var words []string
	for _, w := range camelcase.Split(className) {
		w = strings.Trim(w, "_$ ")
		if w != "" {
			words = append(words, strings.ToLower(w))
		}
	}
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words, "-")
}

// ExportTypeFailures returns one message per referenced type the
// component's module does not export.
func ExportTypeFailures(component string, missing []string) []string {
	msgs := make([]string, 0, len(missing))
	for _, name := range missing {
		msgs = append(msgs, fmt.Sprintf("%s is missing exported type %q.", component, name))
	}
	return msgs
}
