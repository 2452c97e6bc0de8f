/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"

	"github.com/carlhaensch/goscheme/scheme"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

func main() {
	fmt.Print(`goscheme - a small Scheme interpreter
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	var loadFile string
	flag.StringVar(&loadFile, "load", "", "Scheme file to load before starting the REPL")
	var watchFile string
	flag.StringVar(&watchFile, "watch", "", "Scheme file to (re)load whenever it changes on disk")
	flag.Parse()

	engine := scheme.NewEngine()
	if trace, err := scheme.OpenTraceFromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "trace disabled:", err)
	} else if trace != nil {
		engine.SetTrace(trace)
		onexit.Register(func() { trace.Close() })
	}

	fmt.Printf("engine %s ready, %d built-ins: %s\n",
		engine.ID(), len(scheme.BuiltinNames()), strings.Join(scheme.BuiltinNames(), " "))

	if loadFile != "" {
		if _, err := engine.LoadFile(loadFile); err != nil {
			fmt.Fprintln(os.Stderr, "error loading", loadFile, ":", err)
		}
	}
	if watchFile != "" {
		watchAndReload(engine, watchFile)
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-cancelChan
		onexit.ForceExit(0)
	}()

	fmt.Print("\n    Type an expression and press Enter. Ctrl-D to exit.\n\n")

	repl(engine)
	onexit.ForceExit(0)
}

// watchAndReload loads path once, synchronously, then spawns a goroutine
// that reloads it whenever fsnotify reports a change — the same
// debounce-and-rewatch dance the teacher's getWatch closure in main.go
// does for its own (watch) built-in, here driving Engine.LoadFile
// instead of a scripting-language callback.
func watchAndReload(engine *scheme.Engine, path string) {
	reload := func() {
		if result, err := engine.LoadFile(path); err != nil {
			fmt.Fprintln(os.Stderr, "error reloading", path, ":", err)
		} else {
			fmt.Println("reloaded", path, "=>", result)
		}
	}
	reload()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, "watch disabled:", err)
		return
	}
	if err := watcher.Add(path); err != nil {
		fmt.Fprintln(os.Stderr, "watch disabled:", err)
		return
	}

	go func() {
		for range watcher.Events {
			for {
				time.Sleep(10 * time.Millisecond)
				select {
				case <-watcher.Events:
					continue
				default:
				}
				break
			}
			reload()
			watcher.Add(path) // editors rename-on-save, so the watch must be re-armed
		}
	}()
}

func repl(engine *scheme.Engine) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".goscheme-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()
	onexit.Register(func() { l.Close() })

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("panic:", r, string(debug.Stack()))
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			result, err := engine.Interpret(line)
			if se, ok := err.(*scheme.SyntaxError); ok && se.Error() == "Syntax error: unexpected end of input" {
				// incomplete form: keep accumulating lines until it closes
				oldline = line + "\n"
				l.SetPrompt(contprompt)
				return
			}
			if err != nil {
				fmt.Println(err)
			} else {
				fmt.Print(resultprompt)
				fmt.Println(result)
			}
			oldline = ""
			l.SetPrompt(newprompt)
		}()
	}
}
