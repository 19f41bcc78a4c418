package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

// Prompter asks questions on a line-oriented terminal and keeps asking until
// the answer is acceptable. Every Read method returns io.EOF once the input
// is exhausted.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	catalog *i18n.Catalog
}

// NewPrompter wires a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer, catalog *i18n.Catalog) *Prompter {
	if catalog == nil {
		catalog = i18n.Default()
	}
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		catalog: catalog,
	}
}

// Println writes a line of text.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// ReadString returns the first non-blank answer, trimmed.
func (p *Prompter) ReadString(prompt string) (string, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.Println(p.catalog.EnterValue)
	}
}

// ReadInt returns the first answer that parses as an integer within [min, max].
func (p *Prompter) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(line); err == nil && v >= min && v <= max {
			return v, nil
		}
		p.Println(fmt.Sprintf(p.catalog.EnterNumber, min, max))
	}
}

// ReadFloat returns the first answer that parses as a number within
// [min, max]. A comma is accepted as the decimal separator.
func (p *Prompter) ReadFloat(prompt string, min, max float64) (float64, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		line = strings.Replace(line, ",", ".", 1)
		if v, err := strconv.ParseFloat(line, 64); err == nil && v >= min && v <= max {
			return v, nil
		}
		p.Println(fmt.Sprintf(p.catalog.EnterNumber, min, max))
	}
}

// ReadBool returns the first answer recognized by i18n.ParseBool.
func (p *Prompter) ReadBool(prompt string) (bool, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return false, err
		}
		if v, ok := i18n.ParseBool(line); ok {
			return v, nil
		}
		p.Println(p.catalog.EnterYesNo)
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
