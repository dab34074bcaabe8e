package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/redstone/emulator"
	rio "github.com/ezrec/redstone/io"
)

func main() {
	var compile string
	var plain string
	var save string
	var input string
	var output string
	var rom string
	var limit int
	var pause bool
	var screen bool
	var defines bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".skript file to assemble")
	flag.StringVar(&plain, "p", "", "Plain program text file to load")
	flag.StringVar(&save, "s", "", "Save program text to file ('-' for stdout), do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.StringVar(&rom, "rom", "", "Comma separated input values, read instead of the tape input")
	flag.IntVar(&limit, "n", 0, "Stop after this many cycles (0 for no limit)")
	flag.BoolVar(&pause, "pause", false, "Feed an input value before each input register read")
	flag.BoolVar(&screen, "screen", false, "Print the screen when stopped")
	flag.BoolVar(&defines, "defines", false, "List the predefined assembler symbols")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(plain) != 0 {
		log.Fatalf("%v: -c and -p are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	defer emu.Close()
	emu.Verbose = verbose
	emu.PauseOnInput = pause

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf("%v %v\n", key, value)
		}
		return
	}

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a plain program.
	if len(plain) != 0 {
		text, err := os.ReadFile(plain)
		if err != nil {
			log.Fatalf("%v: %v", plain, err)
		}

		err = emu.Load(string(text))
		if err != nil {
			log.Fatalf("%v: %v", plain, err)
		}
	}

	if len(save) != 0 {
		ouf := os.Stdout
		if save != "-" {
			var err error
			ouf, err = os.Create(save)
			if err != nil {
				log.Fatalf("%v: %v", save, err)
			}
			defer ouf.Close()
		}
		err := emu.Save(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if len(rom) != 0 {
		for _, word := range strings.Split(rom, ",") {
			value, err := strconv.ParseInt(strings.TrimSpace(word), 0, 16)
			if err != nil {
				log.Fatalf("%v: %v", rom, err)
			}
			emu.Rom.Data = append(emu.Rom.Data, int16(value))
		}
		emu.Input = &emu.Rom
	}

	emu.Reset()
	done, err := emu.Run(limit)
	if err != nil {
		log.Fatal(err)
	}
	if !done {
		log.Printf("%v: stopped after %d cycles", os.Args[0], emu.ClockCycle)
	}

	if verbose {
		log.Printf("state:\n%v", emu.Engine.State.String())
	}

	if screen {
		sc := &rio.Screen{Ansi: term.IsTerminal(int(os.Stdout.Fd()))}
		err = sc.Render(os.Stdout, &emu.Display)
		if err != nil {
			log.Fatal(err)
		}
	}
}
