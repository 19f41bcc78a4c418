package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out, i18n.Default()), &out
}

func TestReadString_SkipsBlank(t *testing.T) {
	p, out := newTestPrompter("\n   \n  Sony  \n")

	v, err := p.ReadString("Brand: ")
	require.NoError(t, err)
	assert.Equal(t, "Sony", v)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a value."))
	assert.Equal(t, 3, strings.Count(out.String(), "Brand: "))
}

func TestReadString_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("LG")

	v, err := p.ReadString("Brand: ")
	require.NoError(t, err)
	assert.Equal(t, "LG", v)

	_, err = p.ReadString("Brand: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadInt_RetriesUntilInRange(t *testing.T) {
	p, out := newTestPrompter("abc\n-1\n100001\n100000\n")

	v, err := p.ReadInt("Price: ", 0, 100000)
	require.NoError(t, err)
	assert.Equal(t, 100000, v)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter a number from 0 to 100000."))
}

func TestReadInt_EOF(t *testing.T) {
	p, _ := newTestPrompter("x\n")

	_, err := p.ReadInt("Choice: ", 1, 4)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFloat(t *testing.T) {
	p, out := newTestPrompter("NaN\ninf\n5\n49,5\n")

	v, err := p.ReadFloat("Screen: ", 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 49.5, v)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter a number from 10 to 100."))
}

func TestReadBool(t *testing.T) {
	p, out := newTestPrompter("maybe\nда\nno\n1\n")

	v, err := p.ReadBool("Smart TV: ")
	require.NoError(t, err)
	assert.True(t, v)
	assert.Contains(t, out.String(), "Enter 1/0 or Yes/No.")

	v, err = p.ReadBool("Smart TV: ")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = p.ReadBool("Smart TV: ")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestPrompter_RussianMessages(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nок\n"), &out, i18n.Lookup("ru"))

	_, err := p.ReadString("Бренд: ")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Введите значение.")
}
