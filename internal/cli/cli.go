// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/srctree/internal/commands"
	"github.com/temirov/srctree/internal/config"
	"github.com/temirov/srctree/internal/exclusion"
	"github.com/temirov/srctree/internal/output"
	"github.com/temirov/srctree/internal/services/clipboard"
	"github.com/temirov/srctree/internal/services/stream"
	"github.com/temirov/srctree/internal/types"
	"github.com/temirov/srctree/internal/utils"
)

const (
	exclusionFlagName     = "exclude"
	exclusionFlagShort    = "e"
	formatFlagName        = "format"
	hiddenFlagName        = "hidden"
	noIgnoreFlagName      = "no-ignore"
	copyFlagName          = "copy"
	verboseFlagName       = "verbose"
	configFlagName        = "config"
	globalFlagName        = "global"
	forceFlagName         = "force"
	versionTemplate       = "srctree version: {{.Version}}\n"
	defaultPath           = "."
	rootUse               = "srctree [path]"
	rootShortDescription  = "display a directory tree with build files first"
	rootLongDescription   = `srctree renders the directory tree rooted at path (default: current directory).
Files are listed before directories. CMakeLists.txt and Makefile come first, then C and C++ headers,
C sources, C++ sources and every other file grouped by extension, each in natural order.

Exclusion patterns come in three forms:
  /path     excludes path relative to the root and everything below it
  name      excludes every entry called name, anywhere in the tree
  **.ext    "**" matches anything, including separators; the pattern must match the end of the path`
	rootUsageExample = `  # Render the current directory
  srctree

  # Exclude build/ at the root and every "components" directory
  srctree -e /build -e components ./firmware

  # Render as JSON, skipping lock files
  srctree --format json -e '**.lock'`

	initUse              = types.CommandInit
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write a default config.yaml into the working directory, or into ~/.srctree with --global.
Existing files are kept unless --force is given.`

	exclusionFlagDescription = "exclude path pattern (repeatable): \"/path\" from root, \"name\" anywhere, \"**.ext\" wildcard"
	formatFlagDescription    = "output format: raw, json or xml"
	hiddenFlagDescription    = "include entries whose names start with a dot"
	noIgnoreFlagDescription  = "do not read patterns from " + utils.IgnoreFileName
	copyFlagDescription      = "copy rendered output to the system clipboard"
	verboseFlagDescription   = "log debug details, such as the parsed exclusion patterns, to stderr"
	configFlagDescription    = "path to a configuration file"
	globalFlagDescription    = "write the configuration into the global configuration directory"
	forceFlagDescription     = "overwrite an existing configuration file"

	invalidFormatMessage         = "invalid format value '%s'"
	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	loadConfigurationErrorFormat = "load configuration: %w"
	copyErrorFormat              = "copy output to clipboard: %w"
	configurationWrittenFormat   = "Configuration written to %s\n"
	exclusionPatternLogMessage   = "exclusion pattern"
	patternLogField              = "pattern"
	patternKindLogField          = "kind"
	rootLogField                 = "root"

	usageExamplesText = `
Usage examples:
  srctree                                 # Display tree for current directory
  srctree /path/to/dir                    # Display tree for specified directory
  srctree -e /build -e components         # Exclude /build from root and any 'components' anywhere
  srctree -e '**.lock'                    # Exclude all .lock files
`
)

// Dependencies carries collaborators that tests replace.
type Dependencies struct {
	Logger   *zap.Logger
	LogLevel *zap.AtomicLevel
	Copier   clipboard.Copier
}

// treeOptions stores the raw flag values of the root command.
type treeOptions struct {
	exclusionPatterns []string
	format            string
	includeHidden     bool
	disableIgnoreFile bool
	copyEnabled       bool
	verbose           bool
	configPath        string
}

// Execute runs the srctree application with the process arguments.
// logLevel is lowered to debug when --verbose is given.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := NewRootCommand(Dependencies{Logger: logger, LogLevel: &logLevel, Copier: clipboard.NewService()})
	rootCommand.SetArgs(foldToggleFlagValues(rootCommand, os.Args[1:], pathExists))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}

	var options treeOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			inputPath := defaultPath
			if len(arguments) == 1 {
				inputPath = arguments[0]
			}
			showUsageExamples := len(arguments) == 0 && command.Flags().NFlag() == 0
			return runTree(command, dependencies, options, inputPath, showUsageExamples)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagShort, nil, exclusionFlagDescription)
	flagSet.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerToggleFlag(flagSet, &options.includeHidden, hiddenFlagName, hiddenFlagDescription)
	registerToggleFlag(flagSet, &options.disableIgnoreFile, noIgnoreFlagName, noIgnoreFlagDescription)
	registerToggleFlag(flagSet, &options.copyEnabled, copyFlagName, copyFlagDescription)
	registerToggleFlag(flagSet, &options.verbose, verboseFlagName, verboseFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
			})
			if initError != nil {
				return initError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), configurationWrittenFormat, destinationPath)
			return writeError
		},
	}
	registerToggleFlag(initCommand.Flags(), &global, globalFlagName, globalFlagDescription)
	registerToggleFlag(initCommand.Flags(), &force, forceFlagName, forceFlagDescription)
	return initCommand
}

// resolvedTreeSettings is the outcome of merging flags over configuration.
type resolvedTreeSettings struct {
	format        string
	includeHidden bool
	useIgnoreFile bool
	copyEnabled   bool
}

func resolveTreeSettings(command *cobra.Command, options treeOptions, configuration config.TreeConfiguration) (resolvedTreeSettings, error) {
	settings := resolvedTreeSettings{
		format:        types.FormatRaw,
		includeHidden: config.BoolOrDefault(configuration.Hidden, false),
		useIgnoreFile: config.BoolOrDefault(configuration.UseIgnore, true),
		copyEnabled:   config.BoolOrDefault(configuration.Copy, false),
	}
	if configuration.Format != "" {
		settings.format = configuration.Format
	}

	flagSet := command.Flags()
	if flagSet.Changed(formatFlagName) {
		settings.format = options.format
	}
	if flagSet.Changed(hiddenFlagName) {
		settings.includeHidden = options.includeHidden
	}
	if flagSet.Changed(noIgnoreFlagName) {
		settings.useIgnoreFile = !options.disableIgnoreFile
	}
	if flagSet.Changed(copyFlagName) {
		settings.copyEnabled = options.copyEnabled
	}

	settings.format = strings.ToLower(strings.TrimSpace(settings.format))
	if !isSupportedFormat(settings.format) {
		return resolvedTreeSettings{}, fmt.Errorf(invalidFormatMessage, settings.format)
	}
	return settings, nil
}

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// runTree validates the root, resolves settings and streams the rendered tree to the command output.
func runTree(command *cobra.Command, dependencies Dependencies, options treeOptions, inputPath string, showUsageExamples bool) error {
	if options.verbose && dependencies.LogLevel != nil {
		dependencies.LogLevel.SetLevel(zap.DebugLevel)
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, configurationError)
	}

	settings, settingsError := resolveTreeSettings(command, options, applicationConfiguration.Tree)
	if settingsError != nil {
		return settingsError
	}

	validatedRoot, validationError := commands.ValidateRoot(inputPath)
	if validationError != nil {
		return validationError
	}

	exclusionPatterns, patternsError := config.LoadExclusionPatterns(
		validatedRoot.AbsolutePath,
		applicationConfiguration.Tree.Exclude,
		options.exclusionPatterns,
		settings.useIgnoreFile,
	)
	if patternsError != nil {
		return patternsError
	}
	matcher := exclusion.NewMatcher(exclusionPatterns)
	for _, pattern := range matcher.Patterns() {
		dependencies.Logger.Debug(exclusionPatternLogMessage,
			zap.String(rootLogField, validatedRoot.AbsolutePath),
			zap.String(patternLogField, pattern.Source),
			zap.Stringer(patternKindLogField, pattern.Kind),
		)
	}

	var copyBuffer bytes.Buffer
	var destination io.Writer = command.OutOrStdout()
	if settings.copyEnabled {
		destination = io.MultiWriter(destination, &copyBuffer)
	}

	renderer, rendererError := output.NewStreamRenderer(settings.format, destination, output.FormatHeader(validatedRoot))
	if rendererError != nil {
		return rendererError
	}

	walkOptions := commands.TreeOptions{
		Root:          validatedRoot.AbsolutePath,
		Matcher:       matcher,
		IncludeHidden: settings.includeHidden,
		Warn: func(message string) {
			dependencies.Logger.Warn(message)
		},
	}
	ctx := command.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if streamError := stream.StreamTree(ctx, walkOptions, renderer.Handle); streamError != nil {
		return streamError
	}
	if flushError := renderer.Flush(); flushError != nil {
		return flushError
	}

	if showUsageExamples && settings.format == types.FormatRaw {
		if _, writeError := io.WriteString(destination, usageExamplesText); writeError != nil {
			return writeError
		}
	}

	if settings.copyEnabled {
		if copyError := dependencies.Copier.Copy(copyBuffer.String()); copyError != nil {
			return fmt.Errorf(copyErrorFormat, copyError)
		}
	}
	return nil
}
