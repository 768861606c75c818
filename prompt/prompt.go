// Package prompt reads validated answers from an interactive console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"weather-app/models"
)

// Prompter writes questions to out and reads answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line prints message and returns the next input line without its line
// terminator. io.EOF is returned once the input is exhausted.
func (p *Prompter) Line(message string) (string, error) {
	fmt.Fprint(p.out, message)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// City asks until a non-blank city name is entered. The answer is returned
// as typed, surrounding whitespace included.
func (p *Prompter) City(message string) (string, error) {
	for {
		city, err := p.Line(message)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(city) != "" {
			return city, nil
		}
		fmt.Fprintln(p.out, "The city is entered incorrectly, try again.")
	}
}

// Days asks for a forecast length until an integer within
// [models.MinForecastDays, models.MaxForecastDays] is entered.
func (p *Prompter) Days() (int, error) {
	message := fmt.Sprintf("How many days do you want to receive a forecast for? (%d-%d): ",
		models.MinForecastDays, models.MaxForecastDays)

	for {
		answer, err := p.Line(message)
		if err != nil {
			return 0, err
		}

		days, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && days >= models.MinForecastDays && days <= models.MaxForecastDays {
			return days, nil
		}
		fmt.Fprintf(p.out, "Please enter a valid day within (%d-%d).\n", models.MinForecastDays, models.MaxForecastDays)
	}
}

// Confirm prints message and reports whether the answer is "Y" in any case
func (p *Prompter) Confirm(message string) (bool, error) {
	answer, err := p.Line(message)
	if err != nil {
		return false, err
	}
	return strings.ToUpper(answer) == "Y", nil
}
