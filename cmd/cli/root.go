package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"anilookup/internal/anilist"
	"anilookup/pkg/utils"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     utils.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "anilookup",
		Short: "Look up anime, manga and characters on AniList",
		Long: `anilookup searches AniList and prints the best match as a card.

Wrap the keywords to narrow the search:
  {Naruto}   anime only
  <Berserk>  manga only
  [Levi]     characters only`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.LoadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./anilookup.yaml)")
	root.PersistentFlags().String("endpoint", anilist.DefaultEndpoint, "AniList GraphQL endpoint")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("anilist.endpoint", root.PersistentFlags().Lookup("endpoint"))
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newQueryCmd(a), newChatCmd(a))
	return root
}
