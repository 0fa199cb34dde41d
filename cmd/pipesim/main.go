// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/pipesim/interpreter"
	"github.com/ezrec/pipesim/render"
	"github.com/ezrec/pipesim/translate"
)

var f = translate.From

// prompt writes text, and reads a line of input.
func prompt(in *bufio.Reader, text string) (answer string, err error) {
	fmt.Print(text)
	answer, err = in.ReadString('\n')
	if errors.Is(err, io.EOF) && len(answer) > 0 {
		err = nil
	}
	answer = strings.TrimSpace(answer)
	return
}

// promptInt prompts until an integer is entered.
func promptInt(in *bufio.Reader, text string) (value int, err error) {
	for {
		var answer string
		answer, err = prompt(in, text)
		if err != nil {
			return
		}
		value, err = strconv.Atoi(answer)
		if err == nil {
			return
		}
		fmt.Println(f("Error: not integer input!"))
		fmt.Println()
	}
}

// show renders the pipeline and register state.
func show(interp *interpreter.Interpreter) {
	err := render.Pipeline(os.Stdout, interp.History())
	if err == nil {
		err = render.Registers(os.Stdout, interp.Registers.All())
	}
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var filename string
	var espText string
	var step bool
	var quiet bool
	var limit int
	var verbose bool

	flag.StringVar(&filename, "f", "", "Program file to run")
	flag.StringVar(&espText, "esp", "", "Initial value of the esp register")
	flag.BoolVar(&step, "s", false, "Wait for enter before each cycle")
	flag.BoolVar(&quiet, "q", false, "Only show the final state")
	flag.IntVar(&limit, "m", 0, "Maximum number of cycles (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	stdin := bufio.NewReader(os.Stdin)

	var err error
	if len(filename) == 0 {
		filename, err = prompt(stdin, f("Enter with the file name: "))
		if err != nil {
			log.Fatal(err)
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, f("The file can't be reached."))
	}

	var esp int
	if len(espText) != 0 {
		esp, err = strconv.Atoi(espText)
		if err != nil {
			log.Fatalf("-esp %v: %v", espText, f("not integer input!"))
		}
	} else {
		esp, err = promptInt(stdin, f("Enter a value to esp: "))
		if err != nil {
			log.Fatal(err)
		}
	}

	interp := interpreter.NewInterpreter(string(source), esp)
	interp.Verbose = verbose
	interp.Pipeline.Verbose = verbose

	err = interp.ParseProgram()
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	for done := false; !done; {
		if limit > 0 && interp.Cycles() >= limit {
			log.Fatalf("%v: %v", filename, interpreter.ErrCycleLimit)
		}

		if step {
			_, err = prompt(stdin, f("\nPress enter to next step...\n\n"))
			if err != nil {
				log.Fatal(err)
			}
		}

		done, err = interp.Step()
		if err != nil {
			log.Fatalf("%v: %v", filename, err)
		}

		if !quiet {
			show(interp)
		}

		if interp.Jumped() {
			err = render.Jump(os.Stdout, interp.Line())
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	if quiet {
		show(interp)
	}

	fmt.Println(f("Program ended after %d cycles.", interp.Cycles()))
}
