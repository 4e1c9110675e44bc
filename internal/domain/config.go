package domain

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

const (
	DefaultPackageDescriptorPath = "./package.json"
	DefaultCEMFileName           = "custom-elements.json"
)

// Rule groups.
const (
	GroupPackageJSON = "packageJson"
	GroupManifest    = "manifest"
)

// ErrUnknownSeverity is returned for severity values other than off,
// warning and error.
var ErrUnknownSeverity = errors.New("unknown severity")

// ErrUnknownRule is returned when a rule id does not name a configurable rule.
var ErrUnknownRule = errors.New("unknown rule")

// PackageJSONRules configures the rules checked against package.json.
type PackageJSONRules struct {
	PackageType            Severity `yaml:"packageType,omitempty"            json:"packageType,omitempty"`
	Main                   Severity `yaml:"main,omitempty"                   json:"main,omitempty"`
	Module                 Severity `yaml:"module,omitempty"                 json:"module,omitempty"`
	Types                  Severity `yaml:"types,omitempty"                  json:"types,omitempty"`
	Exports                Severity `yaml:"exports,omitempty"                json:"exports,omitempty"`
	CustomElementsProperty Severity `yaml:"customElementsProperty,omitempty" json:"customElementsProperty,omitempty"`
	PublishedCEM           Severity `yaml:"publishedCem,omitempty"           json:"publishedCem,omitempty"`
}

// ManifestRules configures the rules checked against the manifest itself.
type ManifestRules struct {
	SchemaVersion      Severity `yaml:"schemaVersion,omitempty"      json:"schemaVersion,omitempty"`
	ModulePath         Severity `yaml:"modulePath,omitempty"         json:"modulePath,omitempty"`
	DefinitionPath     Severity `yaml:"definitionPath,omitempty"     json:"definitionPath,omitempty"`
	TypeDefinitionPath Severity `yaml:"typeDefinitionPath,omitempty" json:"typeDefinitionPath,omitempty"`
	ExportTypes        Severity `yaml:"exportTypes,omitempty"        json:"exportTypes,omitempty"`
	TagName            Severity `yaml:"tagName,omitempty"            json:"tagName,omitempty"`
}

// RuleConfig maps every rule to a severity. A partial RuleConfig leaves
// fields empty; ResolveRules fills them from the defaults.
type RuleConfig struct {
	PackageJSON PackageJSONRules `yaml:"packageJson,omitempty" json:"packageJson"`
	Manifest    ManifestRules    `yaml:"manifest,omitempty"    json:"manifest"`
}

// DefaultRules returns the built-in severities.
func DefaultRules() RuleConfig {
	return RuleConfig{
		PackageJSON: PackageJSONRules{
			PackageType:            SeverityWarning,
			Main:                   SeverityWarning,
			Module:                 SeverityWarning,
			Types:                  SeverityWarning,
			Exports:                SeverityWarning,
			CustomElementsProperty: SeverityError,
			PublishedCEM:           SeverityError,
		},
		Manifest: ManifestRules{
			SchemaVersion:      SeverityWarning,
			ModulePath:         SeverityWarning,
			DefinitionPath:     SeverityWarning,
			TypeDefinitionPath: SeverityWarning,
			ExportTypes:        SeverityError,
			TagName:            SeverityError,
		},
	}
}

// ResolveRules layers a partial configuration over the defaults. Set
// fields in override win; empty fields keep the default. The result has
// every rule set.
func ResolveRules(override RuleConfig) (RuleConfig, error) {
	if err := override.Validate(); err != nil {
		return RuleConfig{}, err
	}
	resolved := DefaultRules()
	if err := mergo.Merge(&resolved, override, mergo.WithOverride); err != nil {
		return RuleConfig{}, fmt.Errorf("merging rule configuration: %w", err)
	}
	return resolved, nil
}

// RuleSetting is one rule id with its configured severity.
type RuleSetting struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
}

// Settings lists every rule in evaluation order.
func (c RuleConfig) Settings() []RuleSetting {
	out := make([]RuleSetting, 0, 13)
	for _, f := range c.fields() {
		out = append(out, RuleSetting{Rule: f.id, Severity: *f.ptr})
	}
	return out
}

// Set assigns a severity to the rule with the given dotted id, such as
// "manifest.tagName".
func (c *RuleConfig) Set(rule string, severity Severity) error {
	if !severity.Valid() {
		return fmt.Errorf("%w %q for %s", ErrUnknownSeverity, severity, rule)
	}
	for _, f := range c.fields() {
		if strings.EqualFold(f.id, rule) {
			*f.ptr = severity
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownRule, rule)
}

// Validate rejects severity values other than off, warning, error or unset.
func (c RuleConfig) Validate() error {
	for _, f := range c.fields() {
		if *f.ptr != "" && !f.ptr.Valid() {
			return fmt.Errorf("%w %q for %s (valid: off, warning, error)", ErrUnknownSeverity, *f.ptr, f.id)
		}
	}
	return nil
}

type ruleField struct {
	id  string
	ptr *Severity
}

func (c *RuleConfig) fields() []ruleField {
	p, m := &c.PackageJSON, &c.Manifest
	return []ruleField{
		{RulePackageType, &p.PackageType},
		{RuleMain, &p.Main},
		{RuleModule, &p.Module},
		{RuleTypes, &p.Types},
		{RuleExports, &p.Exports},
		{RuleCustomElements, &p.CustomElementsProperty},
		{RulePublishedCEM, &p.PublishedCEM},
		{RuleSchemaVersion, &m.SchemaVersion},
		{RuleTagName, &m.TagName},
		{RuleModulePath, &m.ModulePath},
		{RuleDefinitionPath, &m.DefinitionPath},
		{RuleTypeDefinitionPath, &m.TypeDefinitionPath},
		{RuleExportTypes, &m.ExportTypes},
	}
}

// Rule ids as they appear on findings and in --rule overrides.
const (
	RulePackageJSON        = GroupPackageJSON
	RulePackageType        = GroupPackageJSON + ".packageType"
	RuleMain               = GroupPackageJSON + ".main"
	RuleModule             = GroupPackageJSON + ".module"
	RuleTypes              = GroupPackageJSON + ".types"
	RuleExports            = GroupPackageJSON + ".exports"
	RuleCustomElements     = GroupPackageJSON + ".customElementsProperty"
	RulePublishedCEM       = GroupPackageJSON + ".publishedCem"
	RuleSchemaVersion      = GroupManifest + ".schemaVersion"
	RuleModulePath         = GroupManifest + ".modulePath"
	RuleDefinitionPath     = GroupManifest + ".definitionPath"
	RuleTypeDefinitionPath = GroupManifest + ".typeDefinitionPath"
	RuleExportTypes        = GroupManifest + ".exportTypes"
	RuleTagName            = GroupManifest + ".tagName"
)

// Options configures a validation run. Zero values mean "use the default".
type Options struct {
	PackageDescriptorPath string     `yaml:"package,omitempty"       json:"package,omitempty"`
	CEMFileName           string     `yaml:"cem_file_name,omitempty" json:"cem_file_name,omitempty"`
	LogErrors             bool       `yaml:"log_errors,omitempty"    json:"log_errors,omitempty"`
	Exclude               []string   `yaml:"exclude,omitempty"       json:"exclude,omitempty"`
	Debug                 bool       `yaml:"debug,omitempty"         json:"debug,omitempty"`
	Skip                  bool       `yaml:"skip,omitempty"          json:"skip,omitempty"`
	Rules                 RuleConfig `yaml:"rules,omitempty"         json:"rules"`
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		PackageDescriptorPath: DefaultPackageDescriptorPath,
		CEMFileName:           DefaultCEMFileName,
		Rules:                 DefaultRules(),
	}
}

// Resolve returns a copy of o with defaults filled in and rules resolved.
func (o Options) Resolve() (Options, error) {
	rules, err := ResolveRules(o.Rules)
	if err != nil {
		return Options{}, err
	}
	out := o
	out.Rules = rules
	if out.PackageDescriptorPath == "" {
		out.PackageDescriptorPath = DefaultPackageDescriptorPath
	}
	if out.CEMFileName == "" {
		out.CEMFileName = DefaultCEMFileName
	}
	out.Exclude = append([]string(nil), o.Exclude...)
	return out, nil
}

// IsExcluded reports whether the named component is skipped entirely.
func (o Options) IsExcluded(name string) bool {
	for _, e := range o.Exclude {
		if e == name {
			return true
		}
	}
	return false
}
