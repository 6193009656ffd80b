package inspect

import (
	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/model"
)

// PropertyCandidate describes a member that has not been mapped yet. It answers the
// PropertyInspector contract from member metadata alone so acceptance criteria can be
// evaluated without building a mapping node. Nothing is set on a candidate.
type PropertyCandidate struct {
	Entity   model.TypeReference
	Member   string
	Ref      model.TypeReference
	Enum     bool
	Optional bool
}

// CandidateFor describes member m declared on owner.
func CandidateFor(owner model.TypeReference, m *analyze.Member) PropertyCandidate {
	return PropertyCandidate{
		Entity:   owner,
		Member:   m.Name,
		Ref:      model.RefOf(m.Type),
		Enum:     m.IsEnum(),
		Optional: m.IsNullable(),
	}
}

// A candidate has no attributes of its own: nothing is specified and every getter returns the
// automapped default.
func (c PropertyCandidate) IsSet(attr.Key) bool             { return false }
func (c PropertyCandidate) Columns() []ColumnInspector      { return nil }
func (c PropertyCandidate) EntityType() model.TypeReference { return c.Entity }
func (c PropertyCandidate) Property() string                { return c.Member }
func (c PropertyCandidate) Name() string                    { return c.Member }
func (c PropertyCandidate) Type() model.TypeReference       { return c.Ref }
func (c PropertyCandidate) IsEnum() bool                    { return c.Enum }
func (c PropertyCandidate) Nullable() bool                  { return c.Optional }
func (c PropertyCandidate) Access() string                  { return "" }
func (c PropertyCandidate) Insert() bool                    { return true }
func (c PropertyCandidate) Update() bool                    { return true }
func (c PropertyCandidate) LazyLoad() bool                  { return false }
func (c PropertyCandidate) OptimisticLock() bool            { return true }
func (c PropertyCandidate) Formula() string                 { return "" }
func (c PropertyCandidate) Generated() string               { return "" }
func (c PropertyCandidate) Length() int                     { return 0 }
func (c PropertyCandidate) Precision() int                  { return 0 }
func (c PropertyCandidate) Scale() int                      { return 0 }
func (c PropertyCandidate) Unique() bool                    { return false }
func (c PropertyCandidate) UniqueKey() string               { return "" }
func (c PropertyCandidate) SQLType() string                 { return "" }
func (c PropertyCandidate) Index() string                   { return "" }
func (c PropertyCandidate) Check() string                   { return "" }
func (c PropertyCandidate) Default() string                 { return "" }

var _ PropertyInspector = PropertyCandidate{}
