package planilla

import (
	"fmt"

	"github.com/gestion-empleados/api-trabajadores/internal/catalogo"
	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
)

// Disposición fija de la planilla. Las columnas del esquema son base 0.
const (
	ColumnaMarcador       = 0
	ColumnaBaseCronograma = 37
	ColumnasPorMes        = 4
	UltimaColumna         = ColumnaBaseCronograma + 12*ColumnasPorMes // 85 en base 1

	PrimeraFilaEncabezado = 1
	UltimaFilaEncabezado  = 4
	PrimeraFilaDatos      = 5

	// A-I quedan fijas al desplazarse.
	ColumnasFijas = 9
)

type Tipo int

const (
	TipoTexto Tipo = iota
	TipoCodigo
	TipoFecha
	TipoDecimal
	TipoEntero
	TipoBooleano
)

// Campo une una columna de la planilla con un campo de una entidad.
// Los constructores reciben ref, que devuelve el campo dentro del registro o nil si la entidad no existe.
type Campo struct {
	Columna  int
	Entidad  string
	Nombre   string
	Tipo     Tipo
	importar func(r *Registro, celda string)
	exportar func(r *Registro) any
}

func texto(col int, ent, nombre string, ref func(*Registro) *string) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoTexto,
		importar: func(r *Registro, celda string) { *ref(r) = ParseTexto(celda) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil && *p != "" {
				return *p
			}
			return nil
		},
	}
}

func codigo(col int, ent, nombre string, ref func(*Registro) *string, mapear, mostrar func(string) string) Campo {
	c := texto(col, ent, nombre, ref)
	c.Tipo = TipoCodigo
	c.importar = func(r *Registro, celda string) { *ref(r) = mapear(celda) }
	c.exportar = func(r *Registro) any {
		if p := ref(r); p != nil && *p != "" {
			return mostrar(*p)
		}
		return nil
	}
	return c
}

func fecha(col int, ent, nombre string, ref func(*Registro) *models.Fecha) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoFecha,
		importar: func(r *Registro, celda string) { *ref(r) = ParseFecha(celda) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil && p.Valid {
				return p.Time
			}
			return nil
		},
	}
}

// valor vacío se guarda como 0
func moneda(col int, ent, nombre string, ref func(*Registro) *decimal.Decimal) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoDecimal,
		importar: func(r *Registro, celda string) { *ref(r) = decimalOCero(ParseDecimal(celda)) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil {
				return p.InexactFloat64()
			}
			return nil
		},
	}
}

func monedaNula(col int, ent, nombre string, ref func(*Registro) *decimal.NullDecimal) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoDecimal,
		importar: func(r *Registro, celda string) { *ref(r) = ParseDecimal(celda) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil && p.Valid {
				return p.Decimal.InexactFloat64()
			}
			return nil
		},
	}
}

func entero(col int, ent, nombre string, ref func(*Registro) *int) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoEntero,
		importar: func(r *Registro, celda string) { *ref(r) = enteroOCero(celda) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil {
				return *p
			}
			return nil
		},
	}
}

func booleano(col int, ent, nombre string, ref func(*Registro) *bool) Campo {
	return Campo{
		Columna: col, Entidad: ent, Nombre: nombre, Tipo: TipoBooleano,
		importar: func(r *Registro, celda string) { *ref(r) = ParseBool(celda) },
		exportar: func(r *Registro) any {
			if p := ref(r); p != nil && *p {
				return "X"
			}
			return nil
		},
	}
}

func mismo(s string) string { return s }

const (
	entTrabajador      = "trabajador"
	entContratacion    = "contratacion"
	entIngreso         = "ingreso"
	entRetiro          = "retiro"
	entSeguridadSocial = "seguridad_social"
	entProyecto        = "proyectos"
	entCronograma      = "cronograma"
)

// Columnas es la tabla única que usan importación y exportación.
var Columnas = append(columnasFijas(), columnasCronograma()...)

func columnasFijas() []Campo {
	return []Campo{
		codigo(1, entTrabajador, "tipo", func(r *Registro) *string { return &r.Trabajador.Tipo }, catalogo.CodigoIdentificacion, mismo),
		texto(2, entTrabajador, "numero", func(r *Registro) *string { return &r.Trabajador.Numero }),
		fecha(3, entTrabajador, "fecha_expedicion_cedula", func(r *Registro) *models.Fecha { return &r.Trabajador.FechaExpedicionCedula }),
		fecha(4, entTrabajador, "fecha_nacimiento", func(r *Registro) *models.Fecha { return &r.Trabajador.FechaNacimiento }),
		texto(5, entTrabajador, "primer_apellido", func(r *Registro) *string { return &r.Trabajador.PrimerApellido }),
		texto(6, entTrabajador, "segundo_apellido", func(r *Registro) *string { return &r.Trabajador.SegundoApellido }),
		texto(7, entTrabajador, "primer_nombre", func(r *Registro) *string { return &r.Trabajador.PrimerNombre }),
		texto(8, entTrabajador, "segundo_nombre", func(r *Registro) *string { return &r.Trabajador.SegundoNombre }),

		codigo(9, entContratacion, "tipo_contrato", func(r *Registro) *string {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.TipoContrato
		}, catalogo.CodigoContrato, catalogo.EtiquetaContrato),
		texto(10, entContratacion, "cargo", func(r *Registro) *string {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.Cargo
		}),
		moneda(11, entContratacion, "salario_contratado", func(r *Registro) *decimal.Decimal {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.SalarioContratado
		}),
		codigo(12, entContratacion, "municipio_base", func(r *Registro) *string {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.MunicipioBase
		}, catalogo.CodigoMunicipio, mismo),
		fecha(13, entContratacion, "fecha_inicio_contrato", func(r *Registro) *models.Fecha {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.FechaInicioContrato
		}),
		fecha(14, entContratacion, "fecha_final_contrato", func(r *Registro) *models.Fecha {
			if r.Contratacion == nil {
				return nil
			}
			return &r.Contratacion.FechaFinalContrato
		}),

		fecha(15, entIngreso, "fecha_ingreso", func(r *Registro) *models.Fecha {
			if r.Ingreso == nil {
				return nil
			}
			return &r.Ingreso.FechaIngreso
		}),
		fecha(16, entIngreso, "examen_ingreso", func(r *Registro) *models.Fecha {
			if r.Ingreso == nil {
				return nil
			}
			return &r.Ingreso.ExamenIngreso
		}),
		fecha(17, entIngreso, "fecha_entrega_epp", func(r *Registro) *models.Fecha {
			if r.Ingreso == nil {
				return nil
			}
			return &r.Ingreso.FechaEntregaEPP
		}),
		fecha(18, entIngreso, "fecha_entrega_dotacion", func(r *Registro) *models.Fecha {
			if r.Ingreso == nil {
				return nil
			}
			return &r.Ingreso.FechaEntregaDotacion
		}),

		fecha(19, entRetiro, "fecha_retiro", func(r *Registro) *models.Fecha {
			if r.Retiro == nil {
				return nil
			}
			return &r.Retiro.FechaRetiro
		}),
		fecha(20, entRetiro, "fecha_liquidacion", func(r *Registro) *models.Fecha {
			if r.Retiro == nil {
				return nil
			}
			return &r.Retiro.FechaLiquidacion
		}),
		monedaNula(21, entRetiro, "valor_liquidacion", func(r *Registro) *decimal.NullDecimal {
			if r.Retiro == nil {
				return nil
			}
			return &r.Retiro.ValorLiquidacion
		}),
		fecha(22, entRetiro, "fecha_examen_retiro", func(r *Registro) *models.Fecha {
			if r.Retiro == nil {
				return nil
			}
			return &r.Retiro.FechaExamenRetiro
		}),

		texto(23, entSeguridadSocial, "eps", func(r *Registro) *string {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.EPS
		}),
		fecha(24, entSeguridadSocial, "fecha_afiliacion_eps", func(r *Registro) *models.Fecha {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.FechaAfiliacionEPS
		}),
		texto(25, entSeguridadSocial, "caja_compensacion", func(r *Registro) *string {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.CajaCompensacion
		}),
		fecha(26, entSeguridadSocial, "fecha_afiliacion_caja", func(r *Registro) *models.Fecha {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.FechaAfiliacionCaja
		}),
		texto(27, entSeguridadSocial, "fondo_pension", func(r *Registro) *string {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.FondoPension
		}),
		fecha(28, entSeguridadSocial, "fecha_afiliacion_pension", func(r *Registro) *models.Fecha {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.FechaAfiliacionPension
		}),
		codigo(29, entSeguridadSocial, "arl", func(r *Registro) *string {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.ARL
		}, catalogo.CodigoARL, mismo),
		codigo(30, entSeguridadSocial, "riesgo", func(r *Registro) *string {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.Riesgo
		}, catalogo.CodigoRiesgo, mismo),
		fecha(31, entSeguridadSocial, "fecha_afiliacion_arl", func(r *Registro) *models.Fecha {
			if r.SeguridadSocial == nil {
				return nil
			}
			return &r.SeguridadSocial.FechaAfiliacionARL
		}),

		booleano(32, entProyecto, "administrativo", func(r *Registro) *bool {
			if r.Proyecto == nil {
				return nil
			}
			return &r.Proyecto.Administrativo
		}),
		booleano(33, entProyecto, "construccion_instalaciones", func(r *Registro) *bool {
			if r.Proyecto == nil {
				return nil
			}
			return &r.Proyecto.ConstruccionInstalaciones
		}),
		booleano(34, entProyecto, "construccion_redes", func(r *Registro) *bool {
			if r.Proyecto == nil {
				return nil
			}
			return &r.Proyecto.ConstruccionRedes
		}),
		booleano(35, entProyecto, "servicios", func(r *Registro) *bool {
			if r.Proyecto == nil {
				return nil
			}
			return &r.Proyecto.Servicios
		}),
		booleano(36, entProyecto, "mantenimiento_redes", func(r *Registro) *bool {
			if r.Proyecto == nil {
				return nil
			}
			return &r.Proyecto.MantenimientoRedes
		}),
	}
}

// ColumnaMes devuelve la primera columna (base 0) del mes 1..12.
func ColumnaMes(mes int) int {
	return ColumnaBaseCronograma + ColumnasPorMes*(mes-1)
}

func columnasCronograma() []Campo {
	var out []Campo
	for mes := 1; mes <= 12; mes++ {
		m := mes - 1
		base := ColumnaMes(mes)
		out = append(out,
			codigo(base, entCronograma, fmt.Sprintf("municipio_ejecucion_%02d", mes), func(r *Registro) *string {
				if r.Cronograma[m] == nil {
					return nil
				}
				return &r.Cronograma[m].MunicipioEjecucion
			}, catalogo.CodigoMunicipio, mismo),
			moneda(base+1, entCronograma, fmt.Sprintf("salario_cotizacion_%02d", mes), func(r *Registro) *decimal.Decimal {
				if r.Cronograma[m] == nil {
					return nil
				}
				return &r.Cronograma[m].SalarioCotizacion
			}),
			entero(base+2, entCronograma, fmt.Sprintf("dias_laborados_%02d", mes), func(r *Registro) *int {
				if r.Cronograma[m] == nil {
					return nil
				}
				return &r.Cronograma[m].DiasLaborados
			}),
			moneda(base+3, entCronograma, fmt.Sprintf("sueldo_devengado_%02d", mes), func(r *Registro) *decimal.Decimal {
				if r.Cronograma[m] == nil {
					return nil
				}
				return &r.Cronograma[m].SueldoDevengado
			}),
		)
	}
	return out
}
