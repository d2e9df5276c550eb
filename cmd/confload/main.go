package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/confload/internal/application"
	"github.com/eugenenazirov/confload/internal/config"
	"github.com/eugenenazirov/confload/internal/logging"
	"github.com/eugenenazirov/confload/internal/values"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "confload: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	kingpinApp := kingpin.New("confload", "Load configuration from environment variables or files and inspect value coercion")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warning, error, critical)").String()

	loadCmd := kingpinApp.Command("load", "Load a configuration source and print it as YAML")
	source := loadCmd.Flag("source", "Configuration source").Default(string(config.SourceEnv)).Enum(kinds()...)
	schemaFile := loadCmd.Flag("schema", "YAML schema describing sections and keys (env source)").String()
	prefix := loadCmd.Flag("prefix", "Environment variable prefix (env source)").String()
	file := loadCmd.Flag("file", "Path to a trusted configuration file (file source)").String()
	format := loadCmd.Flag("format", "Force the file format instead of using the extension").Enum(
		string(config.FormatYAML), string(config.FormatJSON), string(config.FormatTOML), string(config.FormatCUE))
	section := loadCmd.Flag("section", "Print only this section").String()

	castCmd := kingpinApp.Command("cast", "Coerce a value towards the type of a default")
	castValue := castCmd.Arg("value", "Raw value").Required().String()
	castType := castCmd.Flag("type", "Type of the default").Default(values.String.String()).Enum(
		values.Int.String(), values.Float.String(), values.Bool.String(), values.String.String(), values.Structured.String())
	castDefault := castCmd.Flag("default", "Default value, written as a literal of --type").String()

	inferCmd := kingpinApp.Command("infer", "Infer the type of a value from its shape")
	inferValue := inferCmd.Arg("value", "Raw value").Required().String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	switch command {
	case castCmd.FullCommand():
		def, err := parseDefault(*castType, *castDefault)
		if err != nil {
			return err
		}
		printValue(stdout, values.Cast(*castValue, def))
		return nil
	case inferCmd.FullCommand():
		printValue(stdout, values.InferType(*inferValue))
		return nil
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := application.Open(application.Options{
		Source:     config.SourceKind(*source),
		SchemaFile: *schemaFile,
		Prefix:     *prefix,
		File:       *file,
		Format:     config.Format(*format),
	}, logging.NewZap(logger))
	if err != nil {
		return err
	}

	return writeYAML(stdout, cfg, *section)
}

func kinds() []string {
	out := make([]string, 0, 3)
	for _, k := range config.Kinds() {
		out = append(out, string(k))
	}
	return out
}

func newLogger(levelFlag string) (*zap.Logger, error) {
	settings, err := application.LoadSettings()
	if err != nil {
		return nil, err
	}
	if levelFlag != "" {
		settings.LogLevel = levelFlag
	}
	opts, err := settings.LoggingOptions()
	if err != nil {
		return nil, err
	}
	return logging.New(opts)
}

// parseDefault turns the --default literal into a value of the requested kind.
func parseDefault(kindName, raw string) (any, error) {
	kind, _ := values.ParseKind(kindName)
	switch kind {
	case values.Int:
		if raw == "" {
			return 0, nil
		}
		if n, ok := values.ParseInt(raw, 64); ok {
			return int(n), nil
		}
	case values.Float:
		if raw == "" {
			return 0.0, nil
		}
		if f, ok := values.ParseFloat(raw, 64); ok {
			return f, nil
		}
	case values.Bool:
		if raw == "" {
			return false, nil
		}
		if b, ok := values.ParseBool(raw); ok {
			return b, nil
		}
	case values.Structured:
		if raw == "" {
			return map[string]any{}, nil
		}
		if v := values.InferType(raw); values.KindOf(v) == values.Structured {
			return v, nil
		}
	default:
		return raw, nil
	}
	return nil, fmt.Errorf("default %q is not a valid %s", raw, kindName)
}

func printValue(w io.Writer, v any) {
	fmt.Fprintf(w, "%T: %v\n", v, v)
}

func writeYAML(w io.Writer, cfg *config.Config, section string) error {
	var doc any
	if section != "" {
		if !cfg.HasSection(section) {
			return errors.New("section not found: " + section)
		}
		doc = cfg.Section(section, nil)
	} else {
		root := &yaml.Node{Kind: yaml.MappingNode}
		for name, data := range cfg.Sections() {
			var value yaml.Node
			if err := value.Encode(data); err != nil {
				return fmt.Errorf("encode section %s: %w", name, err)
			}
			root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, &value)
		}
		doc = root
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
