package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_FluentSetters(t *testing.T) {
	n := NewElement("").
		SetName("Parent").
		SetAttribute("a", "1").
		SetAttribute("b", 2).
		AddChild(NewElement("Child"), nil, NewText("hello"))

	assert.Equal(t, KindElement, n.Kind())
	assert.Equal(t, "Parent", n.Name())
	require.Len(t, n.Children(), 2)
	assert.Equal(t, "Child", n.Children()[0].Name())
	assert.Equal(t, KindText, n.Children()[1].Kind())
	assert.Equal(t, "hello", n.Children()[1].Text())
}

func TestNode_SetAttributeReplacesInPlace(t *testing.T) {
	n := NewElement("E").
		SetAttribute("first", "a").
		SetAttribute("second", "b").
		SetAttribute("first", "c")

	attrs := n.Attributes()
	require.Equal(t, 2, attrs.Len())
	assert.Equal(t, "first", attrs[0].Name)
	assert.Equal(t, "c", attrs[0].Value)
	assert.Equal(t, "second", attrs[1].Name)
}

func TestNode_SetAttributesBulkReplace(t *testing.T) {
	src := Attributes{{Name: "x", Value: "1"}}
	n := NewElement("E").SetAttribute("old", "gone").SetAttributes(src)

	src[0].Value = "mutated"

	attrs := n.Attributes()
	require.Equal(t, 1, attrs.Len())
	v, ok := attrs.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", v, "bulk replace must copy the caller's slice")

	_, ok = attrs.Get("old")
	assert.False(t, ok)
}

func TestNode_TextNodeHasNoChildrenOrAttributes(t *testing.T) {
	n := NewText("leaf").
		AddChild(NewElement("Child")).
		SetAttribute("a", "b").
		SetAttributes(Attributes{{Name: "c", Value: "d"}})

	p := n.Project()
	assert.Equal(t, KindText, p.Type)
	assert.Equal(t, "leaf", p.Text)
	assert.Empty(t, p.Attributes)
	assert.Empty(t, p.Elements)
}

func TestNode_ProjectIsStructural(t *testing.T) {
	n := NewElement("Root").
		SetAttribute("id", 7).
		AddChild(NewElement("Leaf").AddChild(NewText("t")))

	p := n.Project()
	assert.Equal(t, Projection{
		Type:       KindElement,
		Name:       "Root",
		Attributes: Attributes{{Name: "id", Value: 7}},
		Elements: []Projection{{
			Type:     KindElement,
			Name:     "Leaf",
			Elements: []Projection{{Type: KindText, Text: "t"}},
		}},
	}, p)
}

func TestNode_ProjectDoesNotAlias(t *testing.T) {
	n := NewElement("Root").SetAttribute("k", "v")
	p := n.Project()
	p.Attributes[0].Value = "changed"

	v, _ := n.Attributes().Get("k")
	assert.Equal(t, "v", v)
}

func TestAttributes_EqualIgnoresOrder(t *testing.T) {
	a := Attributes{{Name: "x", Value: "1"}, {Name: "y", Value: true}}
	b := Attributes{{Name: "y", Value: "true"}, {Name: "x", Value: 1}}
	c := Attributes{{Name: "x", Value: "1"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Attributes{{Name: "x", Value: "1"}, {Name: "z", Value: true}}))
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "abc", want: "abc"},
		{name: "bool true", in: true, want: "true"},
		{name: "bool false", in: false, want: "false"},
		{name: "int", in: 110114, want: "110114"},
		{name: "int64", in: int64(-3), want: "-3"},
		{name: "uint8", in: uint8(12), want: "12"},
		{name: "float", in: 1.5, want: "1.5"},
		{name: "stringer", in: stringer{}, want: "stringer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatValue(tc.in))
		})
	}
}
