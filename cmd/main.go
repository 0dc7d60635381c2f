package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agrifusion/cmd/config"
	migration "agrifusion/cmd/database/migrate"
	"agrifusion/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "agrifusion",
		Short: "AgriFusion farm management API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.LoadConfig(configPath)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			if err := migration.Migrate(db); err != nil {
				return err
			}

			app, err := config.NewApp(db)
			if err != nil {
				return err
			}

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
				<-quit
				log.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					log.Errorf("shutdown: %v", err)
				}
			}()

			return app.Listen(fmt.Sprintf(":%s", utils.GetConfig("APP_PORT")))
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			if err := migration.Migrate(db); err != nil {
				return err
			}
			log.Info("database migration complete")
			return nil
		},
	}

	root.AddCommand(serve, migrate)
	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
