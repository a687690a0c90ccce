package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/pipeline"
	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the résumé against the schema and dry-render every locale",
	Long:  "Validates the YAML résumé structurally against the JSON schema, then renders every configured locale without writing anything. Exits nonzero if any check fails.",
	RunE:  runValidate,
}

var (
	validateFlags  configFlags
	validateSchema string
)

func init() {
	validateFlags.registerInputs(validateCmd)
	validateCmd.Flags().StringSliceVarP(&validateFlags.locales, "locale", "l", nil, "Locale(s) to check, repeatable (default en,de,fr)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to the document JSON schema (default schemas/cv.schema.json)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := validateFlags.resolve(cmd)
	if err != nil {
		return err
	}
	locales, err := i18n.ParseLocales(cfg.Locales)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	failed := 0
	check := func(name string, err error) {
		printer.PrintCheck(name, err)
		if err != nil {
			failed++
		}
	}

	doc, err := document.Load(cfg.Input)
	check("load "+cfg.Input, err)
	if err != nil {
		return fmt.Errorf("validation failed")
	}

	schemaPath := validateSchema
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.CVSchemaPath)
	}
	if schemaPath == "" {
		check("schema", fmt.Errorf("schema file not found: %s", schemas.CVSchemaPath))
	} else {
		check("schema", schemas.ValidateDocument(schemaPath, doc.Interface()))
	}

	inputs, err := pipeline.LoadInputs(cfg.Input, cfg.Template, cfg.EscapeText)
	check("template "+cfg.Template, err)
	if err == nil {
		for _, locale := range locales {
			_, err := inputs.Compose(locale)
			check("render "+locale.String(), err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d check(s) failed", failed)
	}
	return nil
}
