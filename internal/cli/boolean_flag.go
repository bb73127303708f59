package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName            = "bool"
	toggleFlagTrueLiteral         = "true"
	toggleFlagAcceptedValues      = "true, false, yes, no, on, off, 1, 0"
	invalidToggleFlagValueMessage = "invalid value %q for --%s; accepted values: %s"
	longFlagPrefix                = "--"
	flagValueSeparator            = "="
	argumentTerminator            = "--"
)

var toggleFlagLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"1":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"0":     false,
}

// toggleFlagValue is a boolean flag that also accepts yes/no and on/off spellings.
type toggleFlagValue struct {
	target *bool
	name   string
}

func (value *toggleFlagValue) Set(input string) error {
	parsed, ok := parseToggleLiteral(input)
	if !ok {
		return fmt.Errorf(invalidToggleFlagValueMessage, input, value.name, toggleFlagAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleFlagValue) Type() string {
	return toggleFlagTypeName
}

// parseToggleLiteral interprets input as a toggle value. An empty value means true.
func parseToggleLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return true, true
	}
	parsed, ok := toggleFlagLiterals[normalized]
	return parsed, ok
}

// registerToggleFlag adds a flag that defaults to false and turns on when given without a value.
func registerToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	*target = false
	flagSet.Var(&toggleFlagValue{target: target, name: name}, name, usage)
	flagSet.Lookup(name).NoOptDefVal = toggleFlagTrueLiteral
}

// foldToggleFlagValues rewrites "--hidden off" as "--hidden=off" so the value is not read as the
// tree path. The following argument is folded only when it is a toggle literal and no file or
// directory of that name exists; "--hidden 1" therefore renders a directory called 1 when there is one.
func foldToggleFlagValues(command *cobra.Command, arguments []string, pathExists func(string) bool) []string {
	toggleNames := map[string]struct{}{}
	collectToggleFlagNames(command, toggleNames)

	folded := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == argumentTerminator {
			folded = append(folded, arguments[index:]...)
			break
		}
		folded = append(folded, current)
		if !strings.HasPrefix(current, longFlagPrefix) || strings.Contains(current, flagValueSeparator) {
			continue
		}
		if _, isToggle := toggleNames[strings.TrimPrefix(current, longFlagPrefix)]; !isToggle || index+1 >= len(arguments) {
			continue
		}
		next := arguments[index+1]
		if _, isLiteral := parseToggleLiteral(next); !isLiteral || next == "" || pathExists(next) {
			continue
		}
		folded[len(folded)-1] = current + flagValueSeparator + next
		index++
	}
	return folded
}

// pathExists reports whether path names an existing file, directory or link.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func collectToggleFlagNames(command *cobra.Command, target map[string]struct{}) {
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		if _, isToggle := flag.Value.(*toggleFlagValue); isToggle {
			target[flag.Name] = struct{}{}
		}
	})
	for _, child := range command.Commands() {
		collectToggleFlagNames(child, target)
	}
}
