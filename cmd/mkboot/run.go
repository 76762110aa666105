package main

import (
	"io"
	"os"
	"os/signal"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
	"github.com/fatih/color"
)

// runImage launches command with the image path appended and hands its
// console through a pty, so emulators that probe for a terminal keep their
// interactive serial console working.
func runImage(command, image string) error {
	args, err := shellwords.Split(command)
	if err != nil {
		return err
	}
	args = append(args, image)

	p, err := pty.New()
	if err != nil {
		return err
	}
	defer p.Close()

	c := p.Command(args[0], args[1:]...)
	if err := c.Start(); err != nil {
		return err
	}

	// Forward ctrl-c to the child instead of dying with it.
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, os.Interrupt)
	defer signal.Stop(intr)
	go func() {
		for range intr {
			io.WriteString(p, "\x03")
		}
	}()

	go io.Copy(p, os.Stdin)
	go io.Copy(os.Stdout, p)

	if err := c.Wait(); err != nil {
		color.Red("%s exited: %v", args[0], err)
		return err
	}
	return nil
}
