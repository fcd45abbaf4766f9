package cli

import (
	"context"
	"io"
)

// RunFunc handles a command.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. Return a UsageError for mistakes the user should see with help.
type ArgsFunc func(args []string) error

// Context is what a handler receives. Flag values are read through the pointers returned when the flags were declared.
type Context struct {
	context.Context

	Command *Command
	Args    []string // Positional args, flags removed.

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Command is a node in a command tree. Only Name is required.
type Command struct {
	Name    string // Token that selects this command, ex: "hash" in "prog hash".
	Short   string // One line, shown in the parent's command list.
	Long    string
	Example string

	Args ArgsFunc // Optional. If nil, any positional args are accepted.
	Run  RunFunc  // Optional. Commands without Run only group children.

	parent     *Command
	children   []*Command
	local      *FlagSet
	persistent *FlagSet
}

// AddCommand attaches children to c. It panics on a nil, unnamed, or already attached child, since those are programming errors.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		switch {
		case child == nil:
			panic("cli: AddCommand with nil child")
		case child.Name == "":
			panic("cli: AddCommand with unnamed child")
		case child.parent != nil:
			panic("cli: AddCommand with child " + child.Name + " already attached")
		}
		child.parent = c
		c.children = append(c.children, child)
	}
}

// Commands returns a copy of c's children.
func (c *Command) Commands() []*Command {
	return append([]*Command(nil), c.children...)
}

// Flags returns the flags that apply to c only.
func (c *Command) Flags() *FlagSet {
	if c.local == nil {
		c.local = newFlagSet()
	}
	return c.local
}

// PersistentFlags returns the flags that apply to c and all of its descendants.
func (c *Command) PersistentFlags() *FlagSet {
	if c.persistent == nil {
		c.persistent = newFlagSet()
	}
	return c.persistent
}

func (c *Command) child(name string) *Command {
	for _, child := range c.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// lineage returns the commands from the root down to c.
func (c *Command) lineage() []*Command {
	var out []*Command
	for cur := c; cur != nil; cur = cur.parent {
		out = append([]*Command{cur}, out...)
	}
	return out
}
