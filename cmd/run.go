package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/giftolexia/screenterm/internal/app"
	"github.com/giftolexia/screenterm/internal/config"
	"github.com/giftolexia/screenterm/internal/langs"
	"github.com/giftolexia/screenterm/internal/surveyapi"
)

// runWizard resolves configuration, builds the API client, and launches
// the TUI.
func runWizard(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if api, _ := cmd.Flags().GetString("api"); api != "" {
		cfg.APIBaseURL = api
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		if !langs.IsSupported(lang) {
			return fmt.Errorf("unsupported language %q; run \"screenterm langs\" for codes", lang)
		}
		cfg.DefaultLanguage = lang
	}

	client := surveyapi.New(cfg.APIBaseURL,
		surveyapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))

	return app.Run(app.Options{Client: client, Config: cfg})
}

// resolveConfig loads the config file from --config or the default
// location.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
