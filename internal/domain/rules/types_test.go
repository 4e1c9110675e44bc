package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cemlint/cemlint/internal/domain"
	"github.com/cemlint/cemlint/internal/domain/rules"
)

func TestExtractReferencedTypeNames(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"WaOption[]", []string{"WaOption"}},
		{"{ top: number; left: number } | undefined", []string{"undefined"}},
		{"'small' | 'medium' | \"large\"", nil},
		{"Map<string, WaItem>", []string{"Map", "string", "WaItem"}},
		{"WaItem | WaItem[] | null", []string{"WaItem", "null"}},
		{"(event: WaEvent) => void", []string{"WaEvent", "void"}},
		{"Array<1 | 2>", []string{"Array"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.ExtractReferencedTypeNames(tt.text), "text %q", tt.text)
	}
}

func TestIsNativeType(t *testing.T) {
	tests := []struct {
		text   string
		native bool
	}{
		{"string", true},
		{"string[]", true},
		{"Promise<void>", true},
		{"Map<string, WaItem>", false},
		{"HTMLElement | null", true},
		{"SVGElement", true},
		{"(value: string) => void", true},
		{"WaOption", false},
		{"Array<WaOption>", false},
		{"string | WaOption", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.native, rules.IsNativeType(tt.text), "text %q", tt.text)
	}
}

func TestIsExportableTypeName(t *testing.T) {
	assert.True(t, rules.IsExportableTypeName("WaOption"))
	assert.False(t, rules.IsExportableTypeName("string"))
	assert.False(t, rules.IsExportableTypeName("Record"))
	assert.False(t, rules.IsExportableTypeName("HTMLInputElement"))
	assert.False(t, rules.IsExportableTypeName("SVGPathElement"))
	assert.False(t, rules.IsExportableTypeName("keyof"))
	assert.False(t, rules.IsExportableTypeName("MouseEvent"))
}

func TestExtractCustomEventType(t *testing.T) {
	assert.Equal(t, "WaEventDetail", rules.ExtractCustomEventType("CustomEvent<WaEventDetail>"))
	assert.Equal(t, "{ value: string }", rules.ExtractCustomEventType("CustomEvent<{ value: string }>"))
	assert.Equal(t, "WaSelectEvent", rules.ExtractCustomEventType("WaSelectEvent"))
}

func TestMissingExportedTypes_CustomEventDetail(t *testing.T) {
	component := domain.Declaration{
		Kind:          "class",
		Name:          "WaSelect",
		CustomElement: true,
		Events: []domain.Event{
			{Name: "wa-change", Type: &domain.Type{Text: "CustomEvent<WaEventDetail>"}},
		},
	}

	missing := rules.MissingExportedTypes(component, []string{"WaOption"})
	assert.Equal(t, []string{"WaEventDetail"}, missing)
}

func TestReferencedTypes_SkipsNonPublicMembersAndNativeEvents(t *testing.T) {
	component := domain.Declaration{
		Kind:          "class",
		Name:          "WaSelect",
		CustomElement: true,
		Members: []domain.ClassMember{
			{Kind: domain.MemberKindField, Name: "value", Type: &domain.Type{Text: "WaValue | null"}},
			{Kind: domain.MemberKindField, Name: "options", Type: &domain.Type{Text: "WaOption[]"}},
			{Kind: domain.MemberKindField, Name: "_cache", Type: &domain.Type{Text: "WaCache"}},
			{Kind: domain.MemberKindField, Name: "#state", Type: &domain.Type{Text: "WaState"}},
			{Kind: domain.MemberKindField, Name: "internal", Privacy: "private", Type: &domain.Type{Text: "WaPrivate"}},
			{Kind: domain.MemberKindField, Name: "guarded", Privacy: "protected", Type: &domain.Type{Text: "WaProtected"}},
			{Kind: domain.MemberKindField, Name: "styles", Static: true, Type: &domain.Type{Text: "WaStyles"}},
			{Kind: domain.MemberKindField, Name: "untyped"},
			{
				Kind: domain.MemberKindMethod,
				Name: "select",
				Parameters: []domain.Parameter{
					{Name: "option", Type: &domain.Type{Text: "WaOption"}},
					{Name: "opts", Type: &domain.Type{Text: "WaSelectOptions"}},
				},
			},
		},
		Events: []domain.Event{
			{Name: "click", Type: &domain.Type{Text: "MouseEvent"}},
			{Name: "untyped"},
			{Name: "wa-show", Type: &domain.Type{Text: "WaShowEvent"}},
		},
	}

	assert.Equal(t,
		[]string{"WaShowEvent", "WaValue", "WaOption", "WaSelectOptions"},
		rules.ReferencedTypes(component),
	)
}
