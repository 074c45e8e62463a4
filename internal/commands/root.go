package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	constants "sysdash/config"
	"sysdash/internal/collector"
	"sysdash/internal/config"
	"sysdash/internal/encoding"
	"sysdash/internal/insights"
	"sysdash/internal/llm"
	"sysdash/internal/logger"
	"sysdash/internal/render"
	"sysdash/internal/scanner"
	"sysdash/internal/snapshot"
	"sysdash/internal/ui"
)

// GetCurrentVersion is set by the main package from build flags.
var GetCurrentVersion = func() string { return "dev" }

const questionPrompt = "Ask me a question about your system (exit to quit): "

// NewRootCmd creates the dashboard command.
func NewRootCmd() *cobra.Command {
	var (
		query      string
		exportPath string
		cborPath   string
		scanSubnet string
	)

	cmd := &cobra.Command{
		Use:   "sysdash",
		Short: "Terminal system dashboard",
		Long: `Collect live system metrics and display them as styled terminal panels.

Examples:
  sysdash                                # full dashboard
  sysdash --export stats.json           # dashboard plus JSON export
  sysdash --scan 192.168.1.0/24         # include a local network sweep
  sysdash --query "Why is my CPU busy?" # ask AI about the snapshot`,
		DisableSuggestions: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Lookup("version").Changed {
				fmt.Printf("v%s\n", GetCurrentVersion())
				return nil
			}
			return runDashboard(cmd, query, exportPath, cborPath, scanSubnet)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "ask the AI assistant one question about the snapshot")
	cmd.Flags().StringVarP(&exportPath, "export", "e", "", "write the snapshot to a JSON file")
	cmd.Flags().StringVar(&cborPath, "export-cbor", "", "write the snapshot to a CBOR file")
	cmd.Flags().StringVarP(&scanSubnet, "scan", "s", "", "ARP-scan the given CIDR subnet (e.g. 192.168.1.0/24)")
	cmd.Flags().BoolP("version", "v", false, "print version and exit")

	return cmd
}

func runDashboard(cmd *cobra.Command, query, exportPath, cborPath, scanSubnet string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintStatus("error", fmt.Sprintf("Error loading config: %v", err))
		cfg = &config.Config{
			CPUThreshold:    constants.DEFAULT_CPU_THRESHOLD,
			MemoryThreshold: constants.DEFAULT_MEMORY_THRESHOLD,
			DiskThreshold:   constants.DEFAULT_DISK_THRESHOLD,
		}
	}

	log := logger.New(cfg.LogFile)
	defer log.Close()
	log.Info("collecting system stats")

	snap, err := collectWithProgress()
	if err != nil {
		return err
	}

	if scanSubnet != "" {
		log.Info("scanning subnet %s", scanSubnet)
		snap.Set("Network Scan", scanner.Scan(scanSubnet))
	}

	out := cmd.OutOrStdout()
	for _, field := range snap {
		fmt.Fprintln(out, render.Render(field.Key, field.Value))
		fmt.Fprintln(out)
	}

	warnings := insights.Derive(snap, insights.Thresholds{
		CPU:    cfg.CPUThreshold,
		Memory: cfg.MemoryThreshold,
		Disk:   cfg.DiskThreshold,
	})
	if len(warnings) > 0 {
		fmt.Fprintln(out, ui.WarnPanel("Insights", strings.Join(warnings, "\n")))
		fmt.Fprintln(out)
	}

	if exportPath != "" {
		if err := encoding.WriteJSON(exportPath, snap); err != nil {
			ui.PrintStatus("error", fmt.Sprintf("Export failed: %v", err))
			log.Error("json export: %v", err)
		} else {
			ui.PrintStatus("success", fmt.Sprintf("Snapshot exported to %s", exportPath))
		}
	}
	if cborPath != "" {
		if err := encoding.WriteCBOR(cborPath, snap); err != nil {
			ui.PrintStatus("error", fmt.Sprintf("Export failed: %v", err))
			log.Error("cbor export: %v", err)
		} else {
			ui.PrintStatus("success", fmt.Sprintf("Snapshot exported to %s", cborPath))
		}
	}

	client := llm.New(llm.Config{
		APIKey:    cfg.OpenAIAPIKey,
		Org:       cfg.OpenAIOrg,
		Model:     cfg.OpenAIModel,
		MaxTokens: cfg.OpenAIMaxTokens,
	})

	if query != "" {
		askOnce(out, client, snap, query, log)
		return nil
	}
	runChatLoop(out, client, snap, log)
	return nil
}

// collectWithProgress gathers every category behind a progress
// checklist, one line per category.
func collectWithProgress() (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot
	err := ui.RunWithProgress(collector.Categories(), func(done func(string)) {
		snap = collector.Collect(done)
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func askOnce(out io.Writer, client *llm.Client, snap snapshot.Snapshot, question string, log *logger.Logger) {
	if !client.Enabled() {
		fmt.Fprintln(out, llm.NotConfiguredMessage)
		return
	}

	statsJSON, err := json.Marshal(snap)
	if err != nil {
		ui.PrintStatus("error", fmt.Sprintf("Failed to prepare snapshot: %v", err))
		return
	}

	spinner := ui.NewSimpleSpinner("Querying GPT...")
	spinner.Start()
	// The spinner stops at the first streamed fragment so the answer
	// prints on a clean line.
	answer := &spinnerStopWriter{out: out, spinner: spinner}

	_, err = client.Ask(context.Background(), string(statsJSON), question, answer)
	spinner.Stop()
	if err != nil {
		log.Error("openai query: %v", err)
		ui.PrintStatus("error", fmt.Sprintf("Query failed: %v", err))
		return
	}
	fmt.Fprintln(out)
}

// runChatLoop prompts for questions until the user types exit or
// interrupts. A failed query prints one line and the loop continues.
func runChatLoop(out io.Writer, client *llm.Client, snap snapshot.Snapshot, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(out, questionPrompt)

		lineCh := make(chan string, 1)
		go func() {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lineCh)
				return
			}
			lineCh <- line
		}()

		var question string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return
		case line, ok := <-lineCh:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			question = strings.TrimSpace(line)
		}

		if question == "" {
			continue
		}
		if strings.EqualFold(question, "exit") {
			return
		}
		askOnce(out, client, snap, question, log)
		fmt.Fprintln(out)
	}
}

type spinnerStopWriter struct {
	out     io.Writer
	spinner *ui.SimpleSpinner
	started bool
}

func (w *spinnerStopWriter) Write(p []byte) (int, error) {
	if !w.started {
		w.spinner.Stop()
		w.started = true
	}
	return w.out.Write(p)
}
