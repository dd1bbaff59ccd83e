package main

import (
	"context"
	"fmt"
	"os"

	"umlgen/internal/config"
	"umlgen/internal/extractor"
	"umlgen/internal/generator"
	"umlgen/internal/model"
	"umlgen/internal/pipeline"
	"umlgen/internal/resolver"
	"umlgen/internal/storage"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "umlgen",
		Short: "PlantUML class-diagram to Java skeleton generator",
	}
	dbPath     string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the local model database (SQLite), defaults to the configured path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "umlgen.yaml", "Path to the config file (optional)")

	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for the generated Java files, defaults to the configured path")
	generateCmd.Flags().BoolVar(&checkSyntax, "check", false, "Parse each generated file with the Java grammar and report syntax errors")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "model.json", "Path for the exported model JSON")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// initStore initializes the SQLite store, preferring the --db flag over the
// configured path.
func initStore(cfg *config.Config) (*storage.SQLiteStore, error) {
	path := cfg.Project.DB
	if dbPath != "" {
		path = dbPath
	}
	return storage.NewSQLiteStore(path)
}

// resolveInput picks the diagram path from the argument or the config, and
// materializes the built-in sample diagram there when the file is absent.
func resolveInput(cfg *config.Config, args []string) string {
	input := cfg.Project.Input
	if len(args) > 0 {
		input = args[0]
	}

	if _, err := os.Stat(input); os.IsNotExist(err) {
		fmt.Printf("Creating a sample diagram file: %s\n", input)
		if err := os.WriteFile(input, []byte(sampleDiagram), 0644); err != nil {
			log.Fatalf("Failed to write sample diagram: %v", err)
		}
	}
	return input
}

var (
	outputDir   string
	checkSyntax bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [diagram]",
	Short: "Generate Java source skeletons from a class diagram",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		input := resolveInput(cfg, args)

		text, err := os.ReadFile(input)
		if err != nil {
			log.Fatalf("Failed to read diagram %s: %v", input, err)
		}

		result := pipeline.Run(string(text))
		fmt.Printf("📐 Parsed %d declarations (%d attributes, %d methods, %d lines skipped)\n",
			result.Model.Len(), result.Members.Attributes, result.Members.Methods, result.Members.Skipped)

		outDir := cfg.Project.OutputDir
		if outputDir != "" {
			outDir = outputDir
		}
		if err := generator.WriteFiles(outDir, result.Files); err != nil {
			log.Fatalf("Failed to write generated files: %v", err)
		}

		if checkSyntax || cfg.Generator.Check {
			checker := generator.NewSyntaxChecker()
			failures := 0
			for _, name := range result.Model.Names() {
				if err := checker.Check(result.Files[name]); err != nil {
					log.WithField("artifact", name+generator.FileExtension).Warnf("Check failed: %v", err)
					failures++
				}
			}
			if failures == 0 {
				fmt.Println("✅ All generated files parse cleanly.")
			}
		}

		store, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		if err := store.SaveModel(context.Background(), result.Model, result.Relations); err != nil {
			log.Fatalf("Failed to save model: %v", err)
		}

		fmt.Printf("🎉 Generated %d files in %s\n", len(result.Files), outDir)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [diagram]",
	Short: "Parse a class diagram and store the model without generating code",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		input := resolveInput(cfg, args)

		text, err := os.ReadFile(input)
		if err != nil {
			log.Fatalf("Failed to read diagram %s: %v", input, err)
		}

		m := extractor.New().Extract(string(text))
		stats := resolver.NewMemberResolver().Resolve(m)
		rels := resolver.NewRelationResolver().Resolve(string(text), m)

		store, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		if err := store.SaveModel(context.Background(), m, rels); err != nil {
			log.Fatalf("Failed to save model: %v", err)
		}

		implemented := 0
		for _, ifaces := range rels.Implements {
			implemented += len(ifaces)
		}
		fmt.Printf("📐 %d declarations, %d attributes, %d methods, %d member lines skipped\n",
			m.Len(), stats.Attributes, stats.Methods, stats.Skipped)
		fmt.Printf("🔗 %d extends edges, %d implements edges\n", len(rels.Extends), implemented)
	},
}

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored model as schema-validated JSON",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		store, err := initStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		m, rels, err := store.LoadModel(context.Background())
		if err != nil {
			log.Fatalf("Failed to load model: %v", err)
		}
		if m.Len() == 0 {
			fmt.Println("⚠️  The stored model is empty. Run 'umlgen scan' first.")
		}

		if err := model.NewExport(m, rels).Save(exportPath); err != nil {
			log.Fatalf("Failed to export model: %v", err)
		}
		fmt.Printf("✅ Model exported to %s\n", exportPath)
	},
}
