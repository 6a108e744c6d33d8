/*
File    : go-mix-core/repl/server.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

var serverCyan = color.New(color.FgCyan)
var serverRed = color.New(color.FgRed)

// ServeTCP starts a REPL-over-TCP server on port (SPEC_FULL.md §4's
// supplemented feature, grounded on the teacher's main/main.go
// startServer/handleClient). Each accepted connection gets its own Repl
// instance and therefore its own root environment, so concurrent clients
// never share bindings. Every connection is logged with a fresh google/uuid
// session id alongside its remote address, so concurrent sessions from the
// same address can be told apart; a reconnect gets a new id.
func ServeTCP(port string, banner, version, author, line, license, prompt string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("server: failed to listen on :%s: %w", port, err)
	}
	serverCyan.Printf("go-mix-core REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			serverRed.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, banner, version, author, line, license, prompt)
	}
}

func handleClient(conn net.Conn, banner, version, author, line, license, prompt string) {
	defer conn.Close()
	sessionID := uuid.New().String()
	serverCyan.Printf("[session %s] connected from %s\n", sessionID, conn.RemoteAddr())

	r := NewRepl(banner, version, author, line, license, prompt)
	r.Start(conn, conn)

	serverCyan.Printf("[session %s] disconnected\n", sessionID)
}
