package main

import (
	"net/http"

	"github.com/gestion-empleados/api-trabajadores/internal/auth"
	"github.com/gestion-empleados/api-trabajadores/internal/contratacion"
	"github.com/gestion-empleados/api-trabajadores/internal/cronograma"
	"github.com/gestion-empleados/api-trabajadores/internal/ingreso"
	"github.com/gestion-empleados/api-trabajadores/internal/logger"
	"github.com/gestion-empleados/api-trabajadores/internal/planilla"
	"github.com/gestion-empleados/api-trabajadores/internal/proyecto"
	"github.com/gestion-empleados/api-trabajadores/internal/retiro"
	"github.com/gestion-empleados/api-trabajadores/internal/seguridadsocial"
	"github.com/gestion-empleados/api-trabajadores/internal/trabajador"
	"github.com/gestion-empleados/api-trabajadores/internal/usuario"
	"github.com/gestion-empleados/api-trabajadores/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	log := logger.New("api")

	database, cfg, err := db.GetDB()
	if err != nil {
		log.Fatal(err, "error al conectar la base de datos")
	}
	logger.SetLevel(cfg.LogLevel)
	log = logger.New("api")

	if err := auth.Configurar(cfg); err != nil {
		log.Fatal(err, "error al configurar auth")
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	trabajadorHandler := trabajador.NewHandler(database, cfg.AnioDefecto)
	contratacionHandler := contratacion.NewHandler(database, cfg.AnioDefecto)
	ingresoHandler := ingreso.NewHandler(database, cfg.AnioDefecto)
	retiroHandler := retiro.NewHandler(database, cfg.AnioDefecto)
	seguridadHandler := seguridadsocial.NewHandler(database, cfg.AnioDefecto)
	proyectoHandler := proyecto.NewHandler(database, cfg.AnioDefecto)
	cronogramaHandler := cronograma.NewHandler(database)
	planillaHandler := planilla.NewHandler(database, cfg.PlanillaTemplate, cfg.PlanillaEtiqueta, cfg.AnioDefecto)

	r := mux.NewRouter()

	// Rutas públicas
	r.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/.well-known/jwks.json", auth.JWKSHandler).Methods("GET")
	r.HandleFunc("/trabajadores/exportar-excel", planillaHandler.Exportar).Methods("GET")

	// Rutas protegidas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacion)

	api.HandleFunc("/auth/me", usuarioHandler.Me).Methods("GET")

	admin := api.PathPrefix("/usuarios").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("", usuarioHandler.Crear).Methods("POST")

	// importar-excel antes de /trabajadores/{id}
	api.HandleFunc("/trabajadores/importar-excel", planillaHandler.Importar).Methods("POST")

	// Rutas de trabajadores
	api.HandleFunc("/trabajadores", trabajadorHandler.Listar).Methods("GET")
	api.HandleFunc("/trabajadores", trabajadorHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}", trabajadorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}", trabajadorHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}", trabajadorHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/datos-completos", trabajadorHandler.DatosCompletos).Methods("GET")

	// Rutas de contratación
	api.HandleFunc("/trabajadores/{id:[0-9]+}/contratacion", contratacionHandler.Buscar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/contratacion", contratacionHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/contratacion", contratacionHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/contratacion", contratacionHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/contrataciones", contratacionHandler.ListarPorTrabajador).Methods("GET")
	api.HandleFunc("/contrataciones", contratacionHandler.ListarPorAnio).Methods("GET")
	api.HandleFunc("/contrataciones/activas", contratacionHandler.ListarActivas).Methods("GET")

	// Rutas de ingreso
	api.HandleFunc("/trabajadores/{id:[0-9]+}/ingreso", ingresoHandler.Buscar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/ingreso", ingresoHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/ingreso", ingresoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/ingreso", ingresoHandler.Eliminar).Methods("DELETE")

	// Rutas de retiro
	api.HandleFunc("/trabajadores/{id:[0-9]+}/retiro", retiroHandler.Buscar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/retiro", retiroHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/retiro", retiroHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/retiro", retiroHandler.Eliminar).Methods("DELETE")

	// Rutas de seguridad social
	api.HandleFunc("/trabajadores/{id:[0-9]+}/seguridad-social", seguridadHandler.Buscar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/seguridad-social", seguridadHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/seguridad-social", seguridadHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/seguridad-social", seguridadHandler.Eliminar).Methods("DELETE")

	// Rutas de proyectos
	api.HandleFunc("/trabajadores/{id:[0-9]+}/proyectos", proyectoHandler.Buscar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/proyectos", proyectoHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/proyectos", proyectoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/proyectos", proyectoHandler.Eliminar).Methods("DELETE")

	// Rutas de cronograma
	api.HandleFunc("/trabajadores/{id:[0-9]+}/cronograma", cronogramaHandler.Listar).Methods("GET")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/cronograma", cronogramaHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/cronograma/{cid:[0-9]+}", cronogramaHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id:[0-9]+}/cronograma/{cid:[0-9]+}", cronogramaHandler.Eliminar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	log.Infof("servidor escuchando en :%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, c.Handler(r)); err != nil {
		log.Fatal(err, "servidor detenido")
	}
}
