package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-userform/internal/config"
	"github.com/goliatone/go-userform/internal/logging"
	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/render"
	"github.com/goliatone/go-userform/pkg/renderers/tui"
	"github.com/goliatone/go-userform/pkg/validation"
)

func PromptCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form from the terminal",
		Long:  `Prompt for every field, re-ask the invalid ones until the form validates, then print the accepted values.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			formModel, err := loadForm(ctx, cfg)
			if err != nil {
				return err
			}

			renderer, err := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithOutputFormat(tui.OutputFormat(v.GetString("output"))),
				tui.WithControllerOptions(
					form.WithSchema(validation.FromModel(formModel)),
					form.WithDismissAfter(0),
					form.WithLogger(logging.Named(logger, "form")),
				),
			)
			if err != nil {
				return err
			}

			out, err := renderer.Render(ctx, formModel, render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", string(tui.OutputFormatPrettyText), "output format (json, form, pretty)")

	return cmd
}
