package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/instance"
	"automapper/internal/model"
)

func TestDiagnosticsString(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("w", "careful", "", "")
	d.AddError("unknown_member", "no member Nmae", "store.Order", "Nmae", "Name")
	d.AddInfo("i", "note", "store.Order", "")

	require.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.Equal(t, "[store.Order] Nmae: [unknown_member] no member Nmae (did you mean Name?)", d.Errors[0].String())
	assert.Equal(t, "[w] careful", d.Warnings[0].String())
	assert.EqualError(t, d.Error(), d.Errors[0].String())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, []DiagnosticSeverity{DiagnosticError, DiagnosticWarning, DiagnosticInfo},
		[]DiagnosticSeverity{all[0].Severity, all[1].Severity, all[2].Severity})

	var other Diagnostics
	other.AddError("e", "again", "", "")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
}

func TestRecorderObservesSuppressedWrites(t *testing.T) {
	rec := NewRecorder()

	p := model.NewProperty("Total", model.TypeReference{Name: "int64"})
	p.Set(attr.Formula, "a + b")

	prop := instance.NewProperty(p, rec)
	assert.False(t, prop.SetFormula("c"))
	assert.True(t, prop.SetLazy())

	require.Len(t, rec.Infos, 1)
	got := rec.Infos[0]
	assert.Equal(t, CodeWriteSuppressed, got.Code)
	assert.Equal(t, "Total", got.Member)
	assert.Contains(t, got.Message, "formula")
	assert.True(t, rec.IsValid())
}

type names map[string]bool

func (n names) Skips(_ analyze.TypeID, member string) bool { return n[member] }

func TestRecorderWrapsSkipper(t *testing.T) {
	rec := NewRecorder()
	owner := analyze.TypeID{PkgPath: "automapper/store", Name: "Order"}

	s := rec.Skipper(names{"Notes": true})
	assert.True(t, s.Skips(owner, "Notes"))
	assert.False(t, s.Skips(owner, "Lines"))

	require.Len(t, rec.Infos, 1)
	assert.Equal(t, CodeMemberIgnored, rec.Infos[0].Code)
	assert.Equal(t, "automapper/store.Order", rec.Infos[0].Type)

	assert.False(t, rec.Skipper(nil).Skips(owner, "Notes"))
}
