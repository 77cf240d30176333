package search

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks whether a suggested name should stand in for the one the
// user typed. The console implementation blocks until a line is read; tests
// inject a scripted implementation instead.
type Confirmer interface {
	Confirm(input, suggestion string) (bool, error)
}

// ConsoleConfirmer prompts on Out and accepts "y" or "yes" from In.
type ConsoleConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleConfirmer wires a confirmer to the given streams, usually stdin
// and stdout.
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *ConsoleConfirmer) Confirm(input, suggestion string) (bool, error) {
	fmt.Fprintf(c.out, "'%s' not found. Did you mean '%s'? (y/n): ", input, suggestion)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// AssumeYes accepts every suggestion without prompting. Used for --yes.
type AssumeYes struct{}

func (AssumeYes) Confirm(input, suggestion string) (bool, error) {
	return true, nil
}

// Decision is the terminal state of the resolution protocol.
type Decision int

const (
	// Abort means the operation must not proceed: nothing matched, or the
	// user declined the suggestion.
	Abort Decision = iota
	// Proceed means an existing entity was confirmed; use Resolution.Name.
	Proceed
	// CreateNew means no existing entity applies; create one with the
	// original input name.
	CreateNew
)

// Resolution is the outcome of running the protocol for one input.
type Resolution struct {
	Decision Decision
	// Name is the confirmed existing name for Proceed, the original input
	// for CreateNew, and empty for Abort.
	Name string
	// Declined distinguishes an Abort where a suggestion was offered and
	// turned down from one where nothing matched at all.
	Declined bool
}

// ResolveExisting runs the lookup-intent protocol for operations that must
// target an existing entity. An exact match proceeds directly; a suggestion
// proceeds only if confirmed; anything else aborts.
func ResolveExisting(ix *Index, input string, confirm Confirmer) (Resolution, error) {
	switch m := ix.Resolve(input); m.Kind {
	case MatchExact:
		return Resolution{Decision: Proceed, Name: m.Name}, nil
	case MatchSuggestion:
		ok, err := confirm.Confirm(input, m.Name)
		if err != nil {
			return Resolution{}, err
		}
		if ok {
			return Resolution{Decision: Proceed, Name: m.Name}, nil
		}
		return Resolution{Decision: Abort, Declined: true}, nil
	default:
		return Resolution{Decision: Abort}, nil
	}
}

// ResolveForCreate runs the creation-intent protocol. An exact match means
// the entity already exists, so the caller opens it instead of re-creating;
// a confirmed suggestion proceeds with the existing name instead of minting
// a near-duplicate; a declined suggestion or no match creates a new entity
// under the original input name.
func ResolveForCreate(ix *Index, input string, confirm Confirmer) (Resolution, error) {
	switch m := ix.Resolve(input); m.Kind {
	case MatchExact:
		return Resolution{Decision: Proceed, Name: m.Name}, nil
	case MatchSuggestion:
		ok, err := confirm.Confirm(input, m.Name)
		if err != nil {
			return Resolution{}, err
		}
		if ok {
			return Resolution{Decision: Proceed, Name: m.Name}, nil
		}
		return Resolution{Decision: CreateNew, Name: input, Declined: true}, nil
	default:
		return Resolution{Decision: CreateNew, Name: input}, nil
	}
}
