package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"e2edev/internal/core"
	"e2edev/internal/llm"
	"e2edev/internal/report"
)

func main() {
	var (
		requirementsPath = flag.String("f", "", "requirements file (default: read stdin)")
		batch            = flag.Bool("batch", false, "run all stages unattended")
		outDir           = flag.String("out", "out", "directory for the generated report and code")
	)
	flag.Parse()

	if err := run(*requirementsPath, *batch, *outDir); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func run(requirementsPath string, batch bool, outDir string) error {
	cfg, err := core.LoadConfig()
	if err != nil {
		return err
	}
	logger := core.NewLogger(cfg.LogLevel)

	if cfg.OpenRouterAPIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY not set (export OPENROUTER_API_KEY=sk-or-v1-...)")
	}

	client, err := llm.NewClient(&llm.Config{
		APIKey:       cfg.OpenRouterAPIKey,
		BaseURL:      "https://openrouter.ai/api/v1",
		DefaultModel: cfg.DefaultModel,
		Temperature:  cfg.Temperature,
	})
	if err != nil {
		return fmt.Errorf("create completion client: %w", err)
	}

	requirements, err := readRequirements(requirementsPath)
	if err != nil {
		return err
	}

	session := core.NewCLISession(core.NewRealAgentExecutor(client), core.NewReviser(client))
	if err := session.Start(requirements); err != nil {
		return err
	}
	logger.Info("session started",
		"session_id", session.State.SessionID,
		"model", cfg.DefaultModel,
		"batch", batch,
	)

	fmt.Println("🚀 End-to-end development session")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	ctx := context.Background()
	if batch {
		err = session.RunBatch(ctx)
	} else {
		err = session.RunInteractive(ctx)
	}
	if err != nil {
		return err
	}

	if err := report.WriteReport(outDir, session.State.Requirements, session.State.Artifacts); err != nil {
		return err
	}
	fmt.Printf("📁 Report written to %s\n", outDir)
	return nil
}

// readRequirements loads the requirements document from a file, or from
// stdin when no path is given.
func readRequirements(path string) (string, error) {
	if path == "" {
		fmt.Println("📋 Paste your requirements, then press Ctrl-D:")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read requirements file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("requirements file %s is empty", path)
	}
	return string(data), nil
}
