package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Aplica o revierte las migraciones del esquema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().IntVarP(&migrateSteps, "steps", "n", 1,
		"Número de migraciones a revertir con down")
}

func runMigrate(_ *cobra.Command, args []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("obtener sql.DB: %w", err)
	}

	switch args[0] {
	case "up":
		return database.RunMigrations(sqlDB, logger)
	case "down":
		return database.RollbackMigrations(sqlDB, migrateSteps, logger)
	}
	return fmt.Errorf("subcomando desconocido %q", args[0])
}
