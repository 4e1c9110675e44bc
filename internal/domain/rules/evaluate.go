package rules

import "github.com/cemlint/cemlint/internal/domain"

// Input is everything one evaluation reads.
type Input struct {
	Package     *domain.PackageDescriptor
	Manifest    *domain.Manifest
	CEMFileName string
	Exclude     []string
}

// Evaluate runs every configured rule and returns the findings in
// evaluation order: package rules first, then the schema version, then each
// component in module and declaration order. Rules set to off are not
// evaluated at all.
func Evaluate(cfg domain.RuleConfig, in Input) []domain.Finding {
	var findings domain.Findings
	EvaluatePackage(&findings, cfg.PackageJSON, in.Package, in.CEMFileName)
	EvaluateManifest(&findings, cfg.Manifest, in.Manifest, in.Exclude)
	return findings.Drain()
}

// check adds a finding when sev is not off and fn reports a failure.
func check(findings *domain.Findings, rule string, sev domain.Severity, fn func() (string, bool)) {
	if sev == domain.SeverityOff {
		return
	}
	if msg, failed := fn(); failed {
		findings.Add(rule, sev, msg)
	}
}

// EvaluatePackage runs the package.json rules. A nil descriptor is a single
// error finding.
func EvaluatePackage(findings *domain.Findings, cfg domain.PackageJSONRules, pkg *domain.PackageDescriptor, cemFileName string) {
	if pkg == nil {
		findings.Add(domain.RulePackageJSON, domain.SeverityError, "The package.json file is missing or invalid.")
		return
	}

	check(findings, domain.RulePackageType, cfg.PackageType, func() (string, bool) {
		return PackageTypeFailure(pkg.Type)
	})

	if !pkg.HasEntryPointMap() {
		check(findings, domain.RuleMain, cfg.Main, func() (string, bool) {
			return MainFailure(pkg.Main)
		})
		check(findings, domain.RuleModule, cfg.Module, func() (string, bool) {
			return ModuleFailure(pkg.Module)
		})
		check(findings, domain.RuleTypes, cfg.Types, func() (string, bool) {
			return TypesFailure(pkg.Types)
		})
	} else {
		check(findings, domain.RuleExports, cfg.Exports, func() (string, bool) {
			return ExportsFailure(pkg.Exports)
		})
	}

	check(findings, domain.RuleCustomElements, cfg.CustomElementsProperty, func() (string, bool) {
		return CustomElementsFailure(pkg.CustomElements)
	})
	check(findings, domain.RulePublishedCEM, cfg.PublishedCEM, func() (string, bool) {
		return CEMPublishedFailure(pkg.Files, pkg.CustomElements, cemFileName)
	})
}

// Definitions maps each custom element tag name to the path of the module
// that registers it.
func Definitions(manifest *domain.Manifest) map[string]string {
	defs := make(map[string]string)
	if manifest == nil {
		return defs
	}
	for _, mod := range manifest.Modules {
		for _, exp := range mod.Exports {
			if exp.Kind == domain.ExportKindDefinition {
				defs[exp.Name] = mod.Path
			}
		}
	}
	return defs
}

// EvaluateManifest runs the schema version rule and the per-component rules.
// Components named in exclude are skipped without findings.
func EvaluateManifest(findings *domain.Findings, cfg domain.ManifestRules, manifest *domain.Manifest, exclude []string) {
	if manifest == nil {
		manifest = &domain.Manifest{}
	}

	check(findings, domain.RuleSchemaVersion, cfg.SchemaVersion, func() (string, bool) {
		return SchemaVersionFailure(manifest.SchemaVersion, CurrentSchemaVersion)
	})

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	defs := Definitions(manifest)
	for _, mod := range manifest.Modules {
		exported := mod.ExportedNames()
		for _, decl := range mod.Declarations {
			if !decl.IsComponent() || excluded[decl.Name] {
				continue
			}
			evaluateComponent(findings, cfg, mod, decl, defs[decl.TagName], exported)
		}
	}
}

func evaluateComponent(
	findings *domain.Findings,
	cfg domain.ManifestRules,
	mod domain.Module,
	component domain.Declaration,
	definitionPath string,
	exported []string,
) {
	check(findings, domain.RuleTagName, cfg.TagName, func() (string, bool) {
		return TagNameFailure(component.Name, component.TagName)
	})
	check(findings, domain.RuleModulePath, cfg.ModulePath, func() (string, bool) {
		return ModulePathFailure(component.Name, mod.Path)
	})
	check(findings, domain.RuleDefinitionPath, cfg.DefinitionPath, func() (string, bool) {
		return DefinitionPathFailure(component.Name, definitionPath)
	})
	check(findings, domain.RuleTypeDefinitionPath, cfg.TypeDefinitionPath, func() (string, bool) {
		return TypeDefinitionPathFailure(component.Name, mod.TypeDefinitionPath)
	})

	if cfg.ExportTypes == domain.SeverityOff {
		return
	}
	missing := MissingExportedTypes(component, exported)
	for _, msg := range ExportTypeFailures(component.Name, missing) {
		findings.Add(domain.RuleExportTypes, cfg.ExportTypes, msg)
	}
}
