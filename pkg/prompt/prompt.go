package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrAbandoned is returned when the input ends before a valid answer was given.
var ErrAbandoned = errors.New("input closed before a valid answer was given")

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask writes the question and returns the next line of input without
// surrounding spaces.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "reading answer")
		}
		fmt.Fprintln(p.out)
		return "", ErrAbandoned
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// UntilValid asks the question until validate accepts the answer. The
// message of every validation error is shown to the user before asking again.
func UntilValid[T any](p *Prompter, question string, validate func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := validate(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, err.Error())
	}
}
