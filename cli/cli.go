// Package cli is the numbered text menu of the health-center network tool.
// It reads answers line by line, prints results as tables and never aborts
// on a bad answer: the error is printed and the menu comes back.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/healthnet/logging"
	"github.com/katalvlaran/healthnet/metrics"
	"github.com/katalvlaran/healthnet/network"
)

// Option configures a CLI.
type Option func(*CLI)

// WithColor turns colored status lines on or off.
func WithColor(enabled bool) Option {
	return func(c *CLI) { c.color = enabled }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *CLI) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics enables the session statistics screen.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *CLI) { c.metrics = r }
}

// CLI drives a network from a line-oriented input.
type CLI struct {
	net     *network.Network
	scanner *bufio.Scanner
	out     io.Writer
	log     logrus.FieldLogger
	metrics *metrics.Registry
	color   bool

	okColor   *color.Color
	failColor *color.Color
	headColor *color.Color
	renderer  *lipgloss.Renderer
	actions   []action
}

type action struct {
	key   int
	title string
	run   func() error
}

// New builds a CLI reading from in and writing to out.
func New(n *network.Network, in io.Reader, out io.Writer, opts ...Option) *CLI {
	c := &CLI{
		net:     n,
		scanner: bufio.NewScanner(in),
		out:     out,
		log:     logging.Discard(),
		color:   true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.okColor = color.New(color.FgGreen)
	c.failColor = color.New(color.FgRed)
	c.headColor = color.New(color.FgCyan, color.Bold)
	for _, col := range []*color.Color{c.okColor, c.failColor, c.headColor} {
		if c.color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	c.renderer = lipgloss.NewRenderer(out)
	c.actions = c.menu()

	return c
}

func (c *CLI) menu() []action {
	return []action{
		{1, "Add Health Center", c.addCenter},
		{2, "Edit Health Center", c.editCenter},
		{3, "View Health Centers", c.viewCenters},
		{4, "Remove Health Center", c.removeCenter},
		{5, "Add Connection", c.addConnection},
		{6, "Edit Connection", c.editConnection},
		{7, "View Connections", c.viewConnections},
		{8, "Remove Connection", c.removeConnection},
		{9, "View Relationships", c.viewRelationships},
		{10, "Dijkstra's Shortest Path", c.shortestPath},
		{11, "BFS Traversal", c.traverse},
		{12, "Detect Cycle", c.detectCycle},
		{13, "Floyd-Warshall All-Pairs", c.allPairs},
		{14, "Prim's MST", c.minimumSpanningTree},
		{15, "Emergency Routing", c.emergencyRouting},
		{16, "Connected Components", c.components},
		{17, "Session Statistics", c.statistics},
	}
}

// Run shows the menu until the user picks 0 or the input ends.
func (c *CLI) Run() error {
	for {
		c.printMenu()
		line, err := c.readLine("Enter choice: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.fail("Invalid input. Please enter a number.")
			continue
		}
		if choice == 0 {
			fmt.Fprintln(c.out, "Exiting program...")
			return nil
		}

		act, ok := c.lookup(choice)
		if !ok {
			c.fail("Invalid choice. Try again.")
			continue
		}
		c.log.WithField("choice", choice).Debug(act.title)
		err = act.run()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			return nil
		case err != nil:
			c.fail("Error: " + describe(err))
		}
	}
}

func (c *CLI) lookup(key int) (action, bool) {
	for _, a := range c.actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	c.headColor.Fprintln(c.out, "==== Health Center Network System ====")
	for _, a := range c.actions {
		fmt.Fprintf(c.out, "%d. %s\n", a.key, a.title)
	}
	fmt.Fprintln(c.out, "0. Exit")
}

func (c *CLI) ok(format string, args ...any) {
	c.okColor.Fprintf(c.out, format+"\n", args...)
}

func (c *CLI) fail(msg string) {
	c.failColor.Fprintln(c.out, msg)
}
