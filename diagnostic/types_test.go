package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.All())

	d.AddInfo(CodePruned, "no value, field omitted", "summary")
	d.AddWarning(CodeUnknownTag, `unknown operator type "swtich"`, "kind", "switch")
	d.AddInfo(CodeExtAttr, "overridden by extra attribute", "id")

	assert.Equal(t, 3, d.Len())

	all := d.All()
	assert.Equal(t, SeverityWarning, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[1].Severity)
	assert.Equal(t, CodePruned, all[1].Code)
	assert.Equal(t, CodeExtAttr, all[2].Code)

	assert.Len(t, d.ByCode(CodeUnknownTag), 1)
	assert.Len(t, d.ForField("summary"), 1)
	assert.Empty(t, d.ForField("missing"))
	assert.Equal(t, []string{"switch"}, d.ByCode(CodeUnknownTag)[0].Suggestions)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "field and suggestions",
			d:    Diagnostic{Code: CodeUnknownTag, Message: `unknown operator type "swtich"`, Field: "kind", Suggestions: []string{"switch"}},
			want: `kind: [unknown_operator] unknown operator type "swtich" (did you mean switch?)`,
		},
		{
			name: "message only",
			d:    Diagnostic{Message: "empty ruleset"},
			want: "empty ruleset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(2).String())
}
