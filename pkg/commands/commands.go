package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xfiles/pkg/errors"
	"github.com/arthur-debert/xfiles/pkg/logging"
)

// Kind identifies a store operation
type Kind string

const (
	KindShow     Kind = "show"
	KindReplace  Kind = "replace"
	KindAdd      Kind = "add"
	KindRemove   Kind = "remove"
	KindLocation Kind = "location"
	KindClear    Kind = "clear"
)

// Command tokens recognised as the first argument
const (
	TokenAdd      = "+"
	TokenRemove   = "-"
	TokenLocation = "++"
	TokenClear    = "--"
)

// Invocation is a parsed command line
type Invocation struct {
	Kind  Kind
	Items []string
}

// StdinFunc reads piped input lazily. It reports false when stdin is not
// piped.
type StdinFunc func() ([]string, bool, error)

// Store is the subset of the selection store the commands drive
type Store interface {
	Show() ([]string, error)
	Add(items []string) error
	Remove(items []string) error
	Replace(items []string) error
	Clear() error
	Location() string
}

// Parse maps arguments to an invocation. stdin is only called for
// invocations that can take piped input.
func Parse(args []string, stdin StdinFunc) (Invocation, error) {
	if len(args) == 0 {
		lines, piped, err := readStdin(stdin)
		if err != nil {
			return Invocation{}, err
		}
		if piped {
			return Invocation{Kind: KindReplace, Items: lines}, nil
		}
		return Invocation{Kind: KindShow}, nil
	}

	switch args[0] {
	case TokenAdd:
		items, err := itemsFrom(args[1:], stdin)
		return Invocation{Kind: KindAdd, Items: items}, err
	case TokenRemove:
		items, err := itemsFrom(args[1:], stdin)
		return Invocation{Kind: KindRemove, Items: items}, err
	case TokenLocation:
		return Invocation{Kind: KindLocation}, nil
	case TokenClear:
		return Invocation{Kind: KindClear}, nil
	default:
		return Invocation{Kind: KindReplace, Items: args}, nil
	}
}

// itemsFrom prefers piped lines over trailing arguments
func itemsFrom(args []string, stdin StdinFunc) ([]string, error) {
	lines, piped, err := readStdin(stdin)
	if err != nil {
		return nil, err
	}
	if piped {
		return lines, nil
	}
	return args, nil
}

func readStdin(stdin StdinFunc) ([]string, bool, error) {
	if stdin == nil {
		return nil, false, nil
	}
	lines, piped, err := stdin()
	if err != nil {
		return nil, false, errors.Wrap(err, errors.ErrInputRead, "failed to read piped input")
	}
	return lines, piped, nil
}

// Run performs the invocation against store and writes its output to out
func Run(store Store, inv Invocation, out io.Writer) error {
	logger := logging.GetLogger("commands")
	logger.Debug().
		Str("kind", string(inv.Kind)).
		Int("items", len(inv.Items)).
		Msg("Running command")

	var err error
	switch inv.Kind {
	case KindShow:
	case KindReplace:
		err = store.Replace(inv.Items)
	case KindAdd:
		err = store.Add(inv.Items)
	case KindRemove:
		err = store.Remove(inv.Items)
	case KindLocation:
		_, err = fmt.Fprintln(out, store.Location())
		return err
	case KindClear:
		return store.Clear()
	default:
		return errors.Newf(errors.ErrInternal, "unknown command kind %q", inv.Kind)
	}
	if err != nil {
		return err
	}

	return show(store, out)
}

func show(store Store, out io.Writer) error {
	items, err := store.Show()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(out, strings.Join(items, "\n"))
	return err
}
