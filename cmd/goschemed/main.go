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
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dc0d/onexit"
	"github.com/gorilla/websocket"

	"github.com/carlhaensch/goscheme/scheme"
)

// goschemed exposes an Engine over a websocket, one frame in, one frame
// out: send a text frame containing one expression, receive a text frame
// containing either its printed value or an error message. Each
// connection gets its own Engine, so one client's (define ...) cannot
// observe another's — grounded on the teacher's "websocket" built-in in
// the now-superseded scm/network.go, which upgrades an http.ResponseWriter
// to a websocket.Conn and runs a read loop dispatching each frame to a
// callback; here the callback is replaced outright by Engine.Interpret.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":6067", "listen address")
	flag.Parse()

	http.HandleFunc("/", handleConn)

	server := &http.Server{Addr: *addr}
	onexit.Register(func() { server.Close() })

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-cancelChan
		onexit.ForceExit(0)
	}()

	fmt.Println("goschemed listening on", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(os.Stderr, err)
		onexit.ForceExit(1)
	}
}

func handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "upgrade failed:", err)
		return
	}
	defer conn.Close()

	engine := scheme.NewEngine()
	fmt.Println("connection", r.RemoteAddr, "assigned engine", engine.ID())

	for {
		messageType, msg, err := conn.ReadMessage()
		if err != nil {
			if _, ok := err.(*websocket.CloseError); !ok {
				fmt.Fprintln(os.Stderr, "read error:", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var reply string
		result, ierr := engine.Interpret(string(msg))
		if ierr != nil {
			reply = ierr.Error()
		} else {
			reply = result
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			fmt.Fprintln(os.Stderr, "write error:", err)
			return
		}
	}
}
