package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ionform/pkg/model"
	"github.com/goliatone/go-ionform/pkg/openapi"
)

// config holds the defaults read from the environment; flags override them.
type config struct {
	Format   string `env:"IONFORM_FORMAT,default=schema"`
	LogLevel string `env:"IONFORM_LOG_LEVEL,default=info"`
}

type cliArgs struct {
	input     string
	output    string
	format    string
	operation string
	title     string
	logLevel  string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("ionform-cli: %v", err)
	}
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	args, err := parseArgs(argv, cfg, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, args.logLevel)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	forms, err := readForms(ctx, data, args.input, args.operation)
	if err != nil {
		return err
	}
	logger.Debug("forms loaded", "input", args.input, "count", len(forms))

	payload, err := render(forms, args)
	if err != nil {
		return err
	}

	if args.output == "" {
		_, err = stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(args.output, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("output written", "path", args.output, "format", args.format)
	return nil
}

func loadConfig() (config, error) {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return config{}, fmt.Errorf("environment: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = "schema"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func parseArgs(argv []string, cfg config, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("ionform-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.input, "input", "", "form file (JSON or YAML), or an OpenAPI document with -operation")
	fs.StringVar(&args.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&args.format, "format", cfg.Format, "output format: schema, form or openapi")
	fs.StringVar(&args.operation, "operation", "", "read -input as OpenAPI and pick this operation id (\"*\" for all)")
	fs.StringVar(&args.title, "title", "Forms", "document title for -format openapi")
	fs.StringVar(&args.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	if strings.TrimSpace(args.input) == "" {
		return cliArgs{}, errors.New("-input is required")
	}
	switch args.format {
	case "schema", "form", "openapi":
	default:
		return cliArgs{}, fmt.Errorf("unknown format %q", args.format)
	}
	return args, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// readForms decodes the input as a single form, or as the forms of an
// OpenAPI document when operation is set.
func readForms(ctx context.Context, data []byte, source, operation string) ([]model.Form, error) {
	if operation == "" {
		form, err := parseForm(data, source)
		if err != nil {
			return nil, err
		}
		return []model.Form{form}, nil
	}

	byID, err := openapi.LoadForms(ctx, data)
	if err != nil {
		return nil, err
	}
	if operation == "*" {
		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		forms := make([]model.Form, 0, len(ids))
		for _, id := range ids {
			forms = append(forms, byID[id])
		}
		return forms, nil
	}
	form, ok := byID[operation]
	if !ok {
		return nil, fmt.Errorf("operation %q not found in %s", operation, source)
	}
	return []model.Form{form}, nil
}

func parseForm(data []byte, source string) (model.Form, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Form{}, fmt.Errorf("input %s is empty", source)
	}

	var form model.Form
	if err := json.Unmarshal(data, &form); err != nil {
		form = model.Form{}
		if err := yaml.Unmarshal(data, &form); err != nil {
			return model.Form{}, fmt.Errorf("parse %s: %w", source, err)
		}
	}
	if form.Fields == nil {
		form.Fields = []model.Field{}
	}
	return form, nil
}

func render(forms []model.Form, args cliArgs) ([]byte, error) {
	single := len(forms) == 1 && args.operation != "*"

	var value any
	switch args.format {
	case "form":
		if single {
			value = forms[0]
		} else {
			value = forms
		}
	case "schema":
		if single {
			value = forms[0].CompileSchema()
		} else {
			schemas := make([]any, 0, len(forms))
			for _, form := range forms {
				schemas = append(schemas, form.CompileSchema())
			}
			value = schemas
		}
	case "openapi":
		doc, err := openapi.Document(openapi.Info{Title: args.title}, forms...)
		if err != nil {
			return nil, err
		}
		value = doc
	}

	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", args.format, err)
	}
	return append(payload, '\n'), nil
}
