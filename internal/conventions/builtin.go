package conventions

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/instance"
	"automapper/internal/model"
	"automapper/internal/naming"
)

// PluralTableNames names entity tables after the plural of the entity: Order -> Orders.
type PluralTableNames struct {
	Style naming.Style
}

func (c PluralTableNames) AcceptClass(cr *Criteria[inspect.ClassInspector]) {
	cr.Expect(IsNotSet[inspect.ClassInspector](attr.Table))
}

func (c PluralTableNames) ApplyClass(cls *instance.Class) {
	cls.SetTable(c.Style.Apply(naming.Plural(cls.EntityType().Name)))
}

// ForeignKeyNames names foreign key constraints: fk_<owner>_<member> for references and
// fk_<child>_<owner> for collection keys.
type ForeignKeyNames struct{}

func (ForeignKeyNames) ApplyReference(r *instance.ManyToOne) {
	r.SetForeignKey(naming.StyleSnake.Join("fk", r.EntityType().Name, r.Name()))
}

func (ForeignKeyNames) AcceptCollection(cr *Criteria[inspect.CollectionInspector]) {
	cr.Expect(func(c inspect.CollectionInspector) bool { return c.Relationship() != nil })
}

func (ForeignKeyNames) ApplyCollection(c *instance.Collection) {
	c.SetKey().SetForeignKey(naming.StyleSnake.Join("fk", c.ChildType().Name, c.EntityType().Name))
}

// EnumStringName is the storage type EnumAsString assigns.
const EnumStringName = "EnumString"

// EnumAsString stores enumerations by name instead of through the default adapter.
type EnumAsString struct{}

func (EnumAsString) UserType() {}

func (EnumAsString) AcceptProperty(cr *Criteria[inspect.PropertyInspector]) {
	cr.Expect(IsEnum())
}

func (EnumAsString) ApplyProperty(p *instance.Property) {
	enum := p.Type()
	if enum.IsEnumAdapter() {
		enum = enum.Args[0]
	}

	p.SetType(model.TypeReference{Name: EnumStringName, Args: []model.TypeReference{enum}})
}

// UserType stores every property of type Match as Storage. Members of type Match are mapped
// as properties even when their Go type is not a scalar.
type UserType struct {
	Match   model.TypeReference
	Storage model.TypeReference
}

func (u UserType) UserType() {}

func (u UserType) AcceptProperty(cr *Criteria[inspect.PropertyInspector]) {
	cr.Expect(TypeIs(u.Match))
}

func (u UserType) ApplyProperty(p *instance.Property) {
	p.SetType(u.Storage)
}

var (
	_ ClassConvention      = PluralTableNames{}
	_ ReferenceConvention  = ForeignKeyNames{}
	_ CollectionConvention = ForeignKeyNames{}
	_ UserTypeConvention   = EnumAsString{}
	_ UserTypeConvention   = UserType{}
)
