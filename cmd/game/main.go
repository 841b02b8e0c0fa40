package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rjld-da/Game-SimpleSnake/internal/config"
	"github.com/rjld-da/Game-SimpleSnake/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	cfg := config.GameConfig()
	reader := bufio.NewReader(os.Stdin)
	if err := loop.RunWithOptions(reader, os.Stdout, loop.Options{Config: &cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
