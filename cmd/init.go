package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmalloy/folio/internal/seed"
	"github.com/rmalloy/folio/internal/store"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the content store with the default site document",
	Long: `Writes the sample document (hero, about, experience, projects, blog,
contact, social, skills, statistics, services, faq) into the configured
store. Refuses to overwrite existing content unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(appConfig.StoreBackend, appConfig.DataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		existing, err := s.Load(cmd.Context())
		if err != nil {
			return err
		}
		if len(existing) > 0 && !initForce {
			return fmt.Errorf("store already has %d sections; use --force to overwrite", len(existing))
		}

		if err := s.Save(cmd.Context(), seed.DefaultDocument()); err != nil {
			return err
		}
		logger.Info("seed document written",
			zap.String("store", appConfig.StoreBackend),
			zap.String("data", appConfig.DataDir),
		)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing content")
	rootCmd.AddCommand(initCmd)
}
