package main

import (
	"fmt"

	"github.com/gestion-empleados/api-trabajadores/internal/usuario"
	"github.com/gestion-empleados/api-trabajadores/internal/utils"
	"github.com/spf13/cobra"
)

func newCrearAdminCmd() *cobra.Command {
	var username, password, nombre string

	cmd := &cobra.Command{
		Use:   "crear-admin",
		Short: "Crea un usuario administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _, err := conectar()
			if err != nil {
				return err
			}

			generada := password == ""
			if generada {
				if password, err = utils.GenerarClaveTemporal(16); err != nil {
					return err
				}
			}

			u, err := usuario.NewRepository().CrearConClave(database, username, password, nombre, true)
			if err != nil {
				return err
			}
			fmt.Println(estiloExito.Render(fmt.Sprintf("administrador %q creado (id %d)", u.Username, u.ID)))
			if generada {
				fmt.Println(estiloAdvertencia.Render("clave temporal: " + password))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Nombre de usuario (obligatorio)")
	cmd.Flags().StringVar(&password, "password", "", "Clave; si se omite se genera una temporal")
	cmd.Flags().StringVar(&nombre, "nombre", "Administrador", "Nombre visible")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
