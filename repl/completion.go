package repl

import (
	"fmt"
	"strings"

	"fortio.org/terminal"
	"risp.io/risp/trie"
)

type AutoComplete struct {
	Trie *trie.Trie
}

func NewCompletion() *AutoComplete {
	return &AutoComplete{trie.NewTrie()}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		newLine, newPos, choices := a.Complete(line, pos)
		if len(choices) > 1 {
			fmt.Fprintln(t.Out, "One of:", strings.Join(choices, " "))
		}
		return newLine, newPos, len(choices) > 0
	}
}

// Complete extends the function name ending at pos to the longest common
// prefix of the known names starting with it. Also returns those names.
func (a *AutoComplete) Complete(line string, pos int) (string, int, []string) {
	start := strings.LastIndexAny(line[:pos], " \t(") + 1
	l, names := a.Trie.PrefixAll(line[start:pos])
	if len(names) == 0 {
		return line, pos, nil
	}
	return line[:start] + names[0][:l] + line[pos:], start + l, names
}
