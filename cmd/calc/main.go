// Command calc evaluates expressions from the command line or interactively.
//
//	$ calc '2 ^ 10 - 1'
//	1023
//	$ calc
//	> sin(pi/4) * sqrt(2)
//	1.0000000000000002
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tarelli/calc"
)

var (
	debug    = kingpin.Flag("debug", "Print the parse tree before the result.").Short('d').Bool()
	exprArgs = kingpin.Arg("expression", "Expression to evaluate. Reads expressions interactively when omitted.").Strings()
)

func main() {
	log.SetFlags(0)
	kingpin.Parse()

	if len(*exprArgs) > 0 {
		if err := evaluate(strings.Join(*exprArgs, " ")); err != nil {
			log.Fatal(err)
		}
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	for {
		input, err := line.Prompt("> ")
		switch err {
		case nil:
		case io.EOF, liner.ErrPromptAborted:
			fmt.Println()
			return
		default:
			line.Close()
			log.Fatal(err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if err := evaluate(input); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

// evaluate parses and evaluates one expression and prints the result.
func evaluate(input string) error {
	e, err := calc.Parse(input)
	if err != nil {
		return err
	}
	if *debug {
		fmt.Println(e)
	}
	v, err := e.Eval()
	if err != nil {
		return err
	}
	fmt.Println(format(v))
	return nil
}

// format renders a result, spelling out the IEEE special values.
func format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
