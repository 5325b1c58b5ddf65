package main

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/storylab/storylab/internal/config"
	"github.com/storylab/storylab/internal/pdf"
)

// --- modules ---

var modulesCmd = &cobra.Command{
	Use:   "modules [id]",
	Short: "List course modules, or show one module's lesson steps",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return showModule(cmd.Context(), client, args[0])
		}

		resp, err := client.get(cmd.Context(), "/api/modules")
		if err != nil {
			return err
		}

		var modules []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Level       string `json:"level"`
			Duration    string `json:"duration"`
			StepCount   int    `json:"stepCount"`
		}
		if err := decodeJSON(resp, &modules); err != nil {
			return err
		}

		for _, m := range modules {
			steps := "lesson coming soon"
			if m.StepCount > 0 {
				steps = fmt.Sprintf("%d steps", m.StepCount)
			}
			fmt.Printf("%s  %s (%s, %s, %s)\n",
				colorize(colorBold, padRight(m.ID, 20)),
				m.Title, m.Level, m.Duration, steps)
		}
		return nil
	},
}

func showModule(ctx context.Context, client *apiClient, moduleID string) error {
	resp, err := client.get(ctx, "/api/modules/"+moduleID)
	if err != nil {
		return err
	}

	var m struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Level       string `json:"level"`
		Duration    string `json:"duration"`
		Steps       []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Kind  string `json:"kind"`
		} `json:"steps"`
	}
	if err := decodeJSON(resp, &m); err != nil {
		return err
	}

	fmt.Printf("%s (%s, %s)\n%s\n\n", colorize(colorBold, m.Title), m.Level, m.Duration, m.Description)
	for i, st := range m.Steps {
		fmt.Printf("  %d. %s (%s)\n", i+1, st.Title, st.Kind)
	}
	return nil
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// --- progress ---

var progressCmd = &cobra.Command{
	Use:   "progress <module>",
	Short: "Show or reset progress for a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID := args[0]
		reset, _ := cmd.Flags().GetBool("reset")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		if reset {
			resp, err := client.delete(cmd.Context(), "/api/modules/"+moduleID+"/progress")
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode >= 400 {
				return fmt.Errorf("server returned %d", resp.StatusCode)
			}
			printSuccess("Progress reset for %s", moduleID)
			return nil
		}

		resp, err := client.get(cmd.Context(), "/api/modules/"+moduleID+"/progress")
		if err != nil {
			return err
		}

		var prog struct {
			ModuleID         string   `json:"moduleId"`
			CompletedStepIDs []string `json:"completedStepIds"`
			TotalSteps       int      `json:"totalSteps"`
			Complete         bool     `json:"complete"`
		}
		if err := decodeJSON(resp, &prog); err != nil {
			return err
		}

		fmt.Printf("%s: %d of %d steps complete\n", prog.ModuleID, len(prog.CompletedStepIDs), prog.TotalSteps)
		for _, id := range prog.CompletedStepIDs {
			fmt.Printf("  %s %s\n", colorize(colorGreen, "✓"), id)
		}
		if prog.Complete {
			printSuccess("Module complete! The certificate is unlocked.")
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().Bool("reset", false, "clear all progress for the module")
}

// --- log ---

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent coaching exchanges",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		moduleID, _ := cmd.Flags().GetString("module")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := fmt.Sprintf("/api/exchanges?limit=%d", limit)
		if moduleID != "" {
			path += "&module=" + moduleID
		}
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var exchanges []struct {
			ContextLabel string `json:"context_label"`
			UserText     string `json:"user_text"`
			Reply        string `json:"reply"`
			CreatedAt    string `json:"created_at"`
		}
		if err := decodeJSON(resp, &exchanges); err != nil {
			return err
		}

		if len(exchanges) == 0 {
			fmt.Println("No exchanges yet.")
			return nil
		}

		for _, e := range exchanges {
			fmt.Printf("\n%s  %s\n", colorize(colorCyan, e.CreatedAt), e.ContextLabel)
			fmt.Printf("  %s %s\n", colorize(colorBold, "You:"), truncate(e.UserText, 200))
			fmt.Printf("  %s %s\n", colorize(colorBold, "Coach:"), truncate(e.Reply, 400))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func init() {
	logCmd.Flags().Int("limit", 20, "maximum number of exchanges to show")
	logCmd.Flags().String("module", "", "only show exchanges for this module")
}

// --- achievements ---

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/achievements")
		if err != nil {
			return err
		}

		var achievements []struct {
			Kind     string `json:"kind"`
			ModuleID string `json:"module_id"`
			EarnedAt string `json:"earned_at"`
		}
		if err := decodeJSON(resp, &achievements); err != nil {
			return err
		}

		if len(achievements) == 0 {
			fmt.Println("No achievements yet. Finish a module to earn one!")
			return nil
		}

		for _, a := range achievements {
			fmt.Printf("%s %s (%s) earned %s\n",
				colorize(colorGreen, "★"), a.Kind, a.ModuleID, a.EarnedAt)
		}
		return nil
	},
}

// --- pdf ---

var pdfCmd = &cobra.Command{
	Use:   "pdf <module> [variant]",
	Short: "Download printable PDFs for a module",
	Long: `Download printable PDFs for a module.

Variants: guide, workbook, reference, certificate.
The certificate is only available once the module is complete.

Examples:
  storylab pdf brainstorming guide
  storylab pdf brainstorming --all --output ./printables`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID := args[0]
		all, _ := cmd.Flags().GetBool("all")
		outDir, _ := cmd.Flags().GetString("output")

		var variants []string
		switch {
		case all:
			variants = []string{"guide", "workbook", "reference", "certificate"}
		case len(args) == 2:
			if _, err := pdf.ParseVariant(args[1]); err != nil {
				return err
			}
			variants = []string{args[1]}
		default:
			return fmt.Errorf("specify a variant or --all")
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		if outDir != "" {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(2)
		for _, variant := range variants {
			g.Go(func() error {
				path, err := downloadPDF(ctx, client, moduleID, variant, outDir)
				if err != nil {
					if all && variant == "certificate" {
						printWarning("certificate: %v", err)
						return nil
					}
					return err
				}
				printSuccess("Saved %s", path)
				return nil
			})
		}
		return g.Wait()
	},
}

func downloadPDF(ctx context.Context, client *apiClient, moduleID, variant, outDir string) (string, error) {
	resp, err := client.get(ctx, fmt.Sprintf("/api/modules/%s/pdf/%s", moduleID, variant))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", decodeError(resp)
	}

	name := fmt.Sprintf("%s-%s.pdf", moduleID, variant)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if fn := params["filename"]; fn != "" {
			name = filepath.Base(fn)
		}
	}

	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func init() {
	pdfCmd.Flags().Bool("all", false, "download every variant")
	pdfCmd.Flags().String("output", "", "output directory (default: current directory)")
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list"},
	Short:   "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		v, err := config.GetKey(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var configSetSecretCmd = &cobra.Command{
	Use:   "set-secret <key> <value>",
	Short: "Store a secret in the platform secret store",
	Long: `Store a secret in the platform secret store.

On macOS this is the Keychain; on other platforms a mode-0600 secrets
file under the XDG data directory.

Example:
  storylab config set-secret openai.api_key sk-...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetSecret(key, value); err != nil {
			return err
		}

		printSuccess("Stored secret %s", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetSecretCmd)
}
