// Package script implements a tiny command language to drive a slist.List[int] from text, one command per line.
package script

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/slist/ds/slist"
)

var (
	// ErrInvalidCommand is returned for unknown commands or commands with malformed arguments.
	ErrInvalidCommand = ierrors.New("invalid command")
)

// Result is the outcome of a single command.
type Result struct {
	// Command is the command as it was given.
	Command string

	// Output is the rendered result of the command (a value, a boolean or a number).
	Output string

	// List is the rendered List after the command was applied.
	List string
}

// String returns a human-readable version of the Result.
func (r Result) String() string {
	return lo.Cond(r.Output == "", r.Command+" => "+r.List, r.Command+" -> "+r.Output+" => "+r.List)
}

// command is the implementation of a command. The arguments are already parsed.
type command struct {
	arguments int
	execute   func(list *slist.List[int], args []int) string
}

// commands contains all supported commands by name.
var commands = map[string]command{
	"insertHead": {1, func(list *slist.List[int], args []int) string {
		list.InsertHead(args[0])

		return ""
	}},
	"insertTail": {1, func(list *slist.List[int], args []int) string {
		list.InsertTail(args[0])

		return ""
	}},
	"insertAt": {2, func(list *slist.List[int], args []int) string {
		return strconv.FormatBool(list.InsertAt(args[0], args[1]))
	}},
	"popFront": {0, func(list *slist.List[int], _ []int) string {
		return optional(list.PopFront())
	}},
	"remove": {1, func(list *slist.List[int], args []int) string {
		return strconv.FormatBool(list.Remove(args[0]))
	}},
	"get": {1, func(list *slist.List[int], args []int) string {
		return optional(list.Get(args[0]))
	}},
	"set": {2, func(list *slist.List[int], args []int) string {
		return strconv.FormatBool(list.Set(args[0], args[1]))
	}},
	"front": {0, func(list *slist.List[int], _ []int) string {
		return optional(list.Front())
	}},
	"back": {0, func(list *slist.List[int], _ []int) string {
		return optional(list.Back())
	}},
	"len": {0, func(list *slist.List[int], _ []int) string {
		return strconv.Itoa(list.Len())
	}},
	"print": {0, func(*slist.List[int], []int) string {
		return ""
	}},
	"clear": {0, func(list *slist.List[int], _ []int) string {
		list.Clear()

		return ""
	}},
	"drain": {0, func(list *slist.List[int], _ []int) string {
		return slist.FromSlice(list.Drain()).String()
	}},
}

// Run executes the given commands on the List and returns the result of every command. Empty lines and lines starting
// with "#" are skipped. Execution stops at the first invalid command.
func Run(list *slist.List[int], lines []string, logger log.Logger) ([]Result, error) {
	if logger == nil {
		logger = log.EmptyLogger
	}

	results := make([]Result, 0, len(lines))
	for lineNumber, line := range lines {
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := execute(list, line)
		if err != nil {
			return results, ierrors.Wrapf(err, "line %d", lineNumber+1)
		}

		logger.LogDebug("executed command", "command", result.Command, "output", result.Output, "list", result.List)

		results = append(results, result)
	}

	return results, nil
}

// Split splits a script given as a single string into its lines (commands can be separated by ";" or newlines).
func Split(script string) []string {
	return strings.FieldsFunc(script, func(r rune) bool { return r == ';' || r == '\n' })
}

// ParseValues parses the given strings as decimal list values. Leading zeros are ignored ("010" is 10) and prefixed
// literals like "0x10" are rejected.
func ParseValues(values []string) ([]int, error) {
	parsed := make([]int, 0, len(values))
	for _, value := range values {
		decimalValue, err := decimal(value)
		if err != nil {
			return nil, ierrors.Wrapf(ErrInvalidCommand, "failed to parse value %q: %s", value, err)
		}

		intValue, err := cast.ToIntE(decimalValue)
		if err != nil {
			return nil, ierrors.Wrapf(ErrInvalidCommand, "failed to parse value %q: %s", value, err)
		}

		parsed = append(parsed, intValue)
	}

	return parsed, nil
}

// decimal normalizes a decimal integer literal so that its base does not depend on a prefix.
func decimal(value string) (string, error) {
	value = strings.TrimSpace(value)

	sign, digits := "", value
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}

	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return "", ierrors.New("not a decimal number")
	}

	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}

	return sign + digits, nil
}

// execute parses and executes a single command.
func execute(list *slist.List[int], line string) (result Result, err error) {
	fields := strings.Fields(line)

	cmd, exists := commands[fields[0]]
	if !exists {
		return result, ierrors.Wrapf(ErrInvalidCommand, "unknown command %q", fields[0])
	}

	if len(fields)-1 != cmd.arguments {
		return result, ierrors.Wrapf(ErrInvalidCommand, "%s expects %d argument(s), got %d", fields[0], cmd.arguments, len(fields)-1)
	}

	args, err := ParseValues(fields[1:])
	if err != nil {
		return result, err
	}

	output := cmd.execute(list, args)

	return Result{
		Command: line,
		Output:  output,
		List:    list.String(),
	}, nil
}

// optional renders an optional value as the value or "none".
func optional(value int, exists bool) string {
	if !exists {
		return "none"
	}

	return strconv.Itoa(value)
}
