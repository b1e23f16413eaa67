// Package console implements ports.Console on a line-oriented terminal: prompts
// repeat until the answer is usable, confirmations take y/n with a default.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzaorder/internal/core/ports"

	"github.com/labstack/gommon/color"
)

var ErrInputClosed = errors.New("input closed before an answer was given")

var _ ports.Console = (*Console)(nil)

// Console reads answers line by line from in and writes prompts to out.
// Colour is applied only when out is a terminal.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	c := color.New()
	c.SetOutput(out)

	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: c,
	}
}

// DisableColor turns off colour even when out is a terminal.
func (c *Console) DisableColor() {
	c.color.Disable()
}

func (c *Console) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Warn prints an error line. The session continues.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.color.Yellow("Error: "+msg))
}

// Prompt asks until a non-blank answer is given and returns it trimmed.
func (c *Console) Prompt(label string) (string, error) {
	for {
		fmt.Fprint(c.out, c.color.Cyan(label)+": ")

		answer, err := c.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// PromptInt asks until the answer parses as a base-10 integer.
func (c *Console) PromptInt(label string) (int, error) {
	for {
		answer, err := c.Prompt(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		c.Warn(fmt.Sprintf("%q is not a valid integer.", answer))
	}
}

// Confirm asks a yes/no question. A blank answer takes defaultYes.
func (c *Console) Confirm(label string, defaultYes bool) (bool, error) {
	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	for {
		fmt.Fprint(c.out, c.color.Cyan(label)+suffix)

		answer, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Warn("invalid input")
	}
}

// readLine returns the next line without its terminator and surrounding
// spaces. A final line without a newline still counts; after that the input is
// closed.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}
