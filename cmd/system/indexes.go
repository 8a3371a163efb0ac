package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/medisage/medisage_backend/config"
	"github.com/medisage/medisage_backend/pkg/mongodb"
)

func NewIndexesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Create MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client, db, err := mongodb.Connect(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to MongoDB: %w", err)
			}
			defer client.Disconnect(context.Background())

			fmt.Println("Creating indexes...")
			if err := mongodb.EnsureIndexes(ctx, db); err != nil {
				return fmt.Errorf("failed to create indexes: %w", err)
			}
			fmt.Println("Indexes created successfully.")
			return nil
		},
	}

	return cmd
}
