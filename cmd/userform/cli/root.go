package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-userform/internal/config"
)

// RootCmd builds the userform command tree around a fresh viper instance.
func RootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "userform",
		Short:         "Serve or fill in the user information form",
		Long:          `Serve the user information form over HTTP or fill it in from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return readConfigFile(v)
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "path to a YAML config file")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(ServeCmd(v))
	cmd.AddCommand(PromptCmd(v))
	cmd.AddCommand(VersionCmd())

	return cmd
}

func InitAndExecute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func readConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}
