package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/llm"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
	"github.com/ieltsvocab/vocabquiz/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question generation and sentence analysis endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := config.Logger()

		addr := cfg.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Without a provider every request is served from the fallback.
		provider, llmCfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			log.WithError(err).Warn("LLM provider not configured, serving fallback questions only")
			provider = nil
		} else {
			log.WithFields(logrus.Fields{
				"provider": llmCfg.Provider,
				"model":    provider.ModelID(),
			}).Info("LLM provider ready")
		}

		genCfg, sentCfg := handlerConfigs(llmCfg)
		gen := questiongen.New(provider, genCfg, nil)
		analyzer := sentence.NewAnalyzer(provider, sentCfg)
		srv := server.New(gen, analyzer, server.Options{AllowedOrigins: cfg.AllowedOrigins})

		if err := srv.ListenAndServe(ctx, addr); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

// handlerConfigs applies the resolved LLM timeout to both model-backed
// handlers. A zero timeout keeps their defaults.
func handlerConfigs(llmCfg llm.Config) (questiongen.Config, sentence.Config) {
	genCfg, sentCfg := questiongen.DefaultConfig(), sentence.DefaultConfig()
	if llmCfg.Timeout > 0 {
		genCfg.Timeout = llmCfg.Timeout
		sentCfg.Timeout = llmCfg.Timeout
	}
	return genCfg, sentCfg
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides VOCABQUIZ_ADDR, default :8080)")
}
