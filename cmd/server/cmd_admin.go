package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/database"
)

var (
	adminNombre   string
	adminCorreo   string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Crea una persona ADMINISTRADOR con credenciales de acceso",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminNombre, "nombre", "Administrador", "Nombre de la persona")
	createAdminCmd.Flags().StringVar(&adminCorreo, "correo", "", "Correo de acceso")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Contraseña (mínimo 4 caracteres)")
	_ = createAdminCmd.MarkFlagRequired("correo")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(_ *cobra.Command, _ []string) error {
	if len(adminPassword) < 4 || len(adminPassword) > 72 {
		return fmt.Errorf("la contraseña debe tener entre 4 y 72 caracteres")
	}

	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rol := model.RolAdministrador
	correo := adminCorreo

	// persona y usuario en la misma transacción
	return repository.NewRepository(db).Transaction(ctx, func(tx *repository.Repository) error {
		personas := service.NewPersonaService(tx, logger)
		usuarios := service.NewUsuarioService(tx, &cfg.Auth, logger)

		p, err := personas.Create(ctx, &dto.CreatePersonaRequest{
			Nombre: adminNombre,
			Correo: &correo,
			Rol:    &rol,
		})
		if err != nil {
			return fmt.Errorf("crear persona: %w", err)
		}
		if _, err := usuarios.Create(ctx, &dto.CreateUsuarioRequest{
			IDPersona:  p.IDPersona,
			Contrasena: adminPassword,
		}); err != nil {
			return fmt.Errorf("crear usuario: %w", err)
		}

		logger.Info("administrador creado", zap.Int64("id_persona", p.IDPersona), zap.String("correo", correo))
		fmt.Printf("Administrador creado: id_persona=%d correo=%s\n", p.IDPersona, correo)
		return nil
	})
}
