package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/automap"
	"automapper/internal/model"
)

func book() *model.ClassMapping {
	cls := model.NewClass(model.TypeReference{PkgPath: "example.com/shop", Name: "book"})
	cls.Set(attr.Table, "books")

	title := model.NewProperty("Title", model.TypeReference{Name: "string"})
	title.Columns().AddDefault(model.NewColumn("Title"))
	cls.AddProperty(title)

	return cls
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(book(), book()))

	want := `class example.com/shop.book name=book type=example.com/shop.book table=books!
  property Title name=Title type=string
    column name=Title
`
	assert.Equal(t, want+"\n"+want, buf.String())
}

type shelf struct {
	ID    int64
	Books []string
}

func TestFormatAutomappedTree(t *testing.T) {
	a, err := automap.NewAutomapper(automap.DefaultConfig())
	require.NoError(t, err)

	cls, err := a.Map(analyze.Of[shelf]())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(cls))

	out := buf.String()
	assert.Contains(t, out, "\n  id ID ")
	assert.Contains(t, out, "\n  collection Books bag")
	assert.Contains(t, out, "\n    key\n")
	assert.Contains(t, out, "\n      column name=shelfID")
	assert.Contains(t, out, "\n    element type=string")
	assert.NotContains(t, out, "!", "nothing was specified")
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}

	w.after--

	return len(p), nil
}

func TestFormatPropagatesWriteErrors(t *testing.T) {
	err := NewTextFormatter(&failingWriter{after: 1}).Format(book())
	require.EqualError(t, err, "disk full")
}

func TestLine(t *testing.T) {
	line := Line(book())
	assert.True(t, strings.HasPrefix(line, "class example.com/shop.book"))
	assert.Equal(t, "column name=Title", Line(book().Properties()[0].Columns().All()[0]))
}
