package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ieltsvocab/vocabquiz/internal/app"
	"github.com/ieltsvocab/vocabquiz/internal/client"
	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/llm"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().String("server", "", "Base URL of a running `vocabquiz serve` (default: run in process)")
	c.Flags().Duration("timeout", 60*time.Second, "Request timeout when talking to --server")
	c.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

func init() {
	addPlayFlags(playCmd)
}

// runPlay builds the quiz service and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	sampler := vocab.NewSampler(nil)

	var backend client.Backend
	if url, _ := cmd.Flags().GetString("server"); url != "" {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		backend = client.NewHTTPBackend(url, &http.Client{Timeout: timeout})
		if f := redirectLogs(cmd); f != nil {
			defer f.Close()
		}
	} else {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		if f := redirectLogs(cmd); f != nil {
			defer f.Close()
		}

		// Build LLM provider (optional: the quiz works from the word lists without it).
		provider, llmCfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Questions will come from the built-in word lists.")
			provider = nil
		}
		genCfg, sentCfg := handlerConfigs(llmCfg)
		backend = client.NewLocalBackend(
			questiongen.New(provider, genCfg, sampler),
			sentence.NewAnalyzer(provider, sentCfg),
		)
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{Service: client.New(backend, sampler), NoSplash: noSplash})
}

// redirectLogs moves logging off the terminal while the TUI owns it: to
// vocabquiz.log next to the database, or nowhere if that cannot be opened.
// The caller closes the returned file, which is nil when logs are discarded.
func redirectLogs(cmd *cobra.Command) *os.File {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		config.SetLogOutput(io.Discard)
		return nil
	}
	p := filepath.Join(filepath.Dir(dbPath), "vocabquiz.log")
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		config.SetLogOutput(io.Discard)
		return nil
	}
	config.SetLogOutput(f)
	return f
}
