package cli

import (
	"errors"
	"io"
	"strings"
)

var errHelpPrinted = errors.New("help printed")

// parseArgv selects a command from argv and applies flags. Tokens naming a child of the current command descend into it until the first positional arg or "--".
// A flag is only recognized once the command declaring it has been selected.
func parseArgv(root *Command, argv []string, helpOut io.Writer) (*Command, []string, error) {
	resetChanged(root)
	selected := root
	selecting := true
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		switch {
		case token == "--":
			positional = append(positional, argv[i+1:]...)
			return selected, positional, nil

		case token == "-h" || token == "--help":
			writeHelp(helpOut, selected)
			return selected, nil, errHelpPrinted

		case strings.HasPrefix(token, "-") && token != "-":
			consumed, err := applyFlag(activeFlags(selected), token, argv[i+1:])
			if err != nil {
				return selected, nil, err
			}
			i += consumed

		default:
			if selecting {
				if child := selected.child(token); child != nil {
					selected = child
					continue
				}
				selecting = false
			}
			positional = append(positional, token)
		}
	}
	return selected, positional, nil
}

// applyFlag sets the flag named by token, taking its value from rest if needed. It returns how many tokens of rest were consumed.
//
// Accepted forms: --name, --name=value, --name value, -n, -n=value, -n value, and -name for single-dash long names.
func applyFlag(defs []*flagDef, token string, rest []string) (int, error) {
	var def *flagDef
	var raw string
	hasRaw := false

	body := strings.TrimLeft(token, "-")
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		raw, hasRaw = body[eq+1:], true
		body = body[:eq]
	}
	if strings.HasPrefix(token, "--") || len([]rune(body)) > 1 {
		def = lookupFlag(defs, body, 0)
	} else if body != "" {
		def = lookupFlag(defs, "", []rune(body)[0])
	}
	if def == nil {
		return 0, usageErrorf("unknown flag: %s", token)
	}

	consumed := 0
	if !hasRaw {
		_, isBool := def.value.(boolValue)
		switch {
		case isBool && len(rest) > 0 && isBoolLiteral(rest[0]):
			raw, consumed = rest[0], 1
		case isBool:
			raw = "true"
		case len(rest) == 0 || rest[0] == "--":
			return 0, usageErrorf("flag needs a value: %s", token)
		default:
			raw, consumed = rest[0], 1
		}
	}

	if err := def.value.set(raw); err != nil {
		return 0, usageErrorf("invalid value %q for %s", raw, def.display())
	}
	def.changed = true
	return consumed, nil
}

// isBoolLiteral limits which following tokens a bool flag consumes, so "--force 1" leaves "1" positional.
func isBoolLiteral(s string) bool {
	return s == "true" || s == "false"
}
