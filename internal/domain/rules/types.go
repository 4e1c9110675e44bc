package rules

import (
	"regexp"
	"slices"
	"strings"

	"github.com/cemlint/cemlint/internal/domain"
)

// nativeEventTypes are DOM event types that never need to be exported.
var nativeEventTypes = []string{
	"MouseEvent", "KeyboardEvent", "FocusEvent", "InputEvent", "UIEvent",
	"WheelEvent", "DragEvent", "ClipboardEvent", "TouchEvent", "PointerEvent",
	"AnimationEvent", "TransitionEvent", "ProgressEvent", "Event", "ErrorEvent",
	"HashChangeEvent", "PageTransitionEvent", "PopStateEvent", "StorageEvent",
	"MessageEvent", "BeforeUnloadEvent", "CustomEvent",
}

// nativeJSTypes are language primitives, built-in objects and web platform
// types.
var nativeJSTypes = []string{
	// primitives
	"string", "number", "boolean", "bigint", "symbol", "undefined", "null",
	"any", "unknown", "never", "void", "array",
	// built-in objects
	"Object", "Array", "Function", "Date", "RegExp", "Map", "Set", "WeakMap",
	"WeakSet", "Promise", "Error", "EvalError", "RangeError", "ReferenceError",
	"SyntaxError", "TypeError", "URIError", "AggregateError",
	// typed arrays
	"Int8Array", "Uint8Array", "Uint8ClampedArray", "Int16Array", "Uint16Array",
	"Int32Array", "Uint32Array", "Float32Array", "Float64Array",
	"BigInt64Array", "BigUint64Array", "ArrayBuffer", "SharedArrayBuffer",
	"DataView",
	"Math", "JSON", "Intl", "Reflect", "Proxy", "Iterator", "AsyncIterator",
	"Generator", "GeneratorFunction", "AsyncFunction", "AsyncGenerator",
	"AsyncGeneratorFunction",
	// web APIs
	"File", "Blob", "FormData", "FileList", "FileReader", "Headers", "Request",
	"Response", "URL", "URLSearchParams", "AbortController", "AbortSignal",
	"ReadableStream", "WritableStream", "TransformStream", "WebSocket",
	"Worker", "SharedWorker", "MessageChannel", "MessagePort", "Notification",
	"BroadcastChannel", "ImageData", "ImageBitmap", "TextEncoder",
	"TextDecoder", "Crypto", "SubtleCrypto", "Performance", "PerformanceEntry",
	"PerformanceObserver", "IntersectionObserver", "MutationObserver",
	"ResizeObserver", "Window", "Document", "Element", "HTMLElement",
	"ShadowRoot", "Node", "EventTarget", "ScrollBehavior", "FocusOptions",
	"VirtualElement", "Keyframe", "KeyframeAnimationOptions", "CSSNumberish",
	"HTMLSlotElement", "FillMode", "PlaybackDirection", "CustomStateSet",
	"ElementInternals", "EventInit",
}

// nativeGenericPrefixes are lower-cased generic containers; a type whose
// head starts with one of them is native.
var nativeGenericPrefixes = []string{
	"promise", "iterator", "asynciterator", "generator", "generatorfunction",
	"asyncfunction", "asyncgenerator", "asyncgeneratorfunction", "set", "map",
	"weakset", "weakmap",
}

// utility types, type operators and literal keywords.
var nonExportableKeywords = []string{
	"object", "readonly", "readonlyarray", "promise", "record", "partial",
	"required", "pick", "omit", "exclude", "extract", "nonnullable",
	"parameters", "returntype", "instancetype", "thistype", "keyof", "typeof",
	"in", "infer", "as", "extends", "templateresult", "function", "true",
	"false", "this", "internals",
}

var nonExportablePrefixes = []string{"html", "svg"}

// nonExportable is the lower-cased closed set of names that never need an
// export.
var nonExportable = buildNonExportable()

func buildNonExportable() map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range [][]string{nativeJSTypes, nativeEventTypes, nonExportableKeywords} {
		for _, name := range group {
			set[strings.ToLower(name)] = struct{}{}
		}
	}
	return set
}

var (
	quotedLiteral  = regexp.MustCompile(`'[^']*'|"[^"]*"`)
	objectLiteral  = regexp.MustCompile(`\{[^}]*\}`)
	parameterLabel = regexp.MustCompile(`\b[A-Za-z_$][A-Za-z0-9_$]*\s*:`)
	nonIdentifier  = regexp.MustCompile(`[^A-Za-z0-9_$]+`)
	customEvent    = regexp.MustCompile(`^CustomEvent<(.+)>$`)
)

// ExtractReferencedTypeNames returns the identifiers referenced by a type
// annotation, de-duplicated in first-seen order.
//
// This is a lexical approximation, not a parser. Quoted literals and
// object literal bodies are dropped in one non-recursive pass, so nested
// braces are only partly stripped. Parameter labels ("name:") are removed
// so they are not mistaken for types, and numeric literals are ignored.
func ExtractReferencedTypeNames(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := quotedLiteral.ReplaceAllString(text, " ")
	cleaned = objectLiteral.ReplaceAllString(cleaned, " ")
	cleaned = parameterLabel.ReplaceAllString(cleaned, " ")

	var names []string
	for _, tok := range nonIdentifier.Split(cleaned, -1) {
		if tok == "" || (tok[0] >= '0' && tok[0] <= '9') {
			continue
		}
		if !slices.Contains(names, tok) {
			names = append(names, tok)
		}
	}
	return names
}

// IsNativeType reports whether every branch of a type annotation is a
// built-in type. Generic arguments are treated as branches, array brackets
// are ignored, and function types count as native.
func IsNativeType(text string) bool {
	if text == "" {
		return false
	}
	replacer := strings.NewReplacer("<", "|", ">", "|")
	for _, branch := range strings.Split(replacer.Replace(text), "|") {
		branch = strings.TrimSpace(branch)
		if branch == "" {
			continue
		}
		if !isNativeBranch(branch) {
			return false
		}
	}
	return true
}

func isNativeBranch(branch string) bool {
	base := strings.TrimSpace(strings.ReplaceAll(branch, "[]", ""))
	if i := strings.IndexAny(base, "<{("); i > 0 {
		base = strings.TrimSpace(base[:i])
	}
	if strings.HasPrefix(base, "(") || strings.HasPrefix(base, "HTML") || strings.HasPrefix(base, "SVG") {
		return true
	}
	lower := strings.ToLower(base)
	for _, prefix := range nativeGenericPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	_, ok := nonExportable[lower]
	return ok
}

// IsExportableTypeName reports whether a referenced name is one the
// component's module is expected to export.
func IsExportableTypeName(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range nonExportablePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	if _, ok := nonExportable[lower]; ok {
		return false
	}
	return !strings.ContainsAny(name, `"'{`)
}

// ExtractCustomEventType unwraps CustomEvent<T> to T. Other event types are
// returned unchanged.
func ExtractCustomEventType(text string) string {
	if m := customEvent.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

func isNativeEventType(text string) bool {
	return slices.Contains(nativeEventTypes, text)
}

// ReferencedTypes collects the exportable type names a component exposes
// through its events, public properties and public method parameters.
func ReferencedTypes(component domain.Declaration) []string {
	var texts []string
	for _, ev := range component.Events {
		t := ev.Type.TypeText()
		if t == "" || isNativeEventType(t) {
			continue
		}
		if detail := ExtractCustomEventType(t); detail != "" {
			texts = append(texts, detail)
		}
	}
	for _, prop := range component.PublicProperties() {
		texts = append(texts, prop.Type.TypeText())
	}
	for _, method := range component.PublicMethods() {
		for _, param := range method.Parameters {
			texts = append(texts, param.Type.TypeText())
		}
	}

	var names []string
	for _, t := range texts {
		for _, name := range ExtractReferencedTypeNames(t) {
			if IsExportableTypeName(name) && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

// MissingExportedTypes returns the referenced type names of component that
// are not among exportedNames.
func MissingExportedTypes(component domain.Declaration, exportedNames []string) []string {
	var missing []string
	for _, name := range ReferencedTypes(component) {
		if !slices.Contains(exportedNames, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
