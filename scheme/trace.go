/*
Copyright (C) 2023  Carl-Philip Hänsch

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
package scheme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Tracefile is a Chrome-tracing-JSON event sink, adapted from the
// teacher's scm/trace.go (itself written for profiling memcp's query
// engine). Gated behind the GOSCHEME_TRACE environment variable so a
// default Interpret call pays nothing for it.
type Tracefile struct {
	mu      sync.Mutex
	file    io.WriteCloser
	isFirst bool
}

var traceStart = time.Now()

// NewTrace wraps file as an open Chrome-tracing-JSON array and returns a
// Tracefile ready to accept events.
func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	return &Tracefile{file: file, isFirst: true}
}

// OpenTraceFromEnv opens a trace file named after the GOSCHEME_TRACE
// environment variable, or returns nil if it is unset — the same
// env-var-gated convention as the teacher's MEMCP_TRACEDIR.
func OpenTraceFromEnv() (*Tracefile, error) {
	path := os.Getenv("GOSCHEME_TRACE")
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return NewTrace(f), nil
}

// Close terminates the JSON array and closes the underlying writer.
func (t *Tracefile) Close() error {
	t.file.Write([]byte("]"))
	return t.file.Close()
}

// Event records a single begin/end/instant entry: typ is "B", "E", or
// "X" per the Chrome tracing format.
func (t *Tracefile) Event(name, category, typ string) {
	ts := time.Since(traceStart).Microseconds()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	entry := struct {
		Name string `json:"name"`
		Cat  string `json:"cat"`
		Ph   string `json:"ph"`
		TS   int64  `json:"ts"`
		PID  int    `json:"pid"`
		TID  int    `json:"tid"`
	}{name, category, typ, ts, 0, 0}
	b, err := json.Marshal(entry)
	if err != nil {
		panic(fmt.Sprintf("trace: %v", err))
	}
	t.file.Write(b)
}
