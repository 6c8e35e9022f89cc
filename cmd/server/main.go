package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/database"
	applogger "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "globalenglish",
	Short:         "API de gestión de tutorías GlobalEnglish",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Ruta del archivo de configuración (por defecto ./config/config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap carga configuración, logger y base de datos comunes a todos los comandos
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("inicializar logger: %w", err)
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}

	return cfg, logger, db, nil
}
