package planilla

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// clonador copia el encabezado de una hoja plantilla a una hoja destino,
// posiblemente en otro libro. Los estilos se recrean en el libro destino una sola vez.
type clonador struct {
	origen     *excelize.File
	hojaOrigen string
	destino    *excelize.File
	estilos    map[int]int
}

func nuevoClonador(origen *excelize.File, hojaOrigen string, destino *excelize.File) *clonador {
	return &clonador{origen: origen, hojaOrigen: hojaOrigen, destino: destino, estilos: map[int]int{}}
}

func (c *clonador) estilo(id int) (int, error) {
	if id == 0 {
		return 0, nil
	}
	if c.origen == c.destino {
		return id, nil
	}
	if nuevo, ok := c.estilos[id]; ok {
		return nuevo, nil
	}
	st, err := c.origen.GetStyle(id)
	if err != nil {
		return 0, err
	}
	nuevo, err := c.destino.NewStyle(st)
	if err != nil {
		return 0, err
	}
	c.estilos[id] = nuevo
	return nuevo, nil
}

// Clonar copia valores, estilos y altos de las filas de encabezado, las celdas combinadas
// del encabezado (desplazadas si filaDestino difiere), los anchos de columna y fija los paneles.
func (c *clonador) Clonar(hojaDestino string, filaDestino int) error {
	desplazamiento := filaDestino - PrimeraFilaEncabezado

	for fila := PrimeraFilaEncabezado; fila <= UltimaFilaEncabezado; fila++ {
		alto, err := c.origen.GetRowHeight(c.hojaOrigen, fila)
		if err != nil {
			return fmt.Errorf("alto fila %d: %w", fila, err)
		}
		if err := c.destino.SetRowHeight(hojaDestino, fila+desplazamiento, alto); err != nil {
			return fmt.Errorf("alto fila %d: %w", fila, err)
		}

		for col := 1; col <= UltimaColumna; col++ {
			origen, _ := excelize.CoordinatesToCellName(col, fila)
			destino, _ := excelize.CoordinatesToCellName(col, fila+desplazamiento)

			valor, err := c.origen.GetCellValue(c.hojaOrigen, origen)
			if err != nil {
				return err
			}
			if valor != "" {
				if err := c.destino.SetCellValue(hojaDestino, destino, valor); err != nil {
					return err
				}
			}

			id, err := c.origen.GetCellStyle(c.hojaOrigen, origen)
			if err != nil {
				return err
			}
			nuevo, err := c.estilo(id)
			if err != nil {
				return fmt.Errorf("estilo %s: %w", origen, err)
			}
			if nuevo != 0 {
				if err := c.destino.SetCellStyle(hojaDestino, destino, destino, nuevo); err != nil {
					return err
				}
			}
		}
	}

	if err := c.combinadas(hojaDestino, desplazamiento); err != nil {
		return err
	}

	for col := 1; col <= UltimaColumna; col++ {
		nombre, _ := excelize.ColumnNumberToName(col)
		ancho, err := c.origen.GetColWidth(c.hojaOrigen, nombre)
		if err != nil {
			return err
		}
		if err := c.destino.SetColWidth(hojaDestino, nombre, nombre, ancho); err != nil {
			return err
		}
	}

	return CongelarPaneles(c.destino, hojaDestino, filaDestino+(UltimaFilaEncabezado-PrimeraFilaEncabezado))
}

// combinadas replica los rangos combinados que caen dentro del encabezado.
func (c *clonador) combinadas(hojaDestino string, desplazamiento int) error {
	rangos, err := c.origen.GetMergeCells(c.hojaOrigen)
	if err != nil {
		return err
	}
	for _, r := range rangos {
		c1, f1, err := excelize.CellNameToCoordinates(r.GetStartAxis())
		if err != nil {
			continue
		}
		c2, f2, err := excelize.CellNameToCoordinates(r.GetEndAxis())
		if err != nil {
			continue
		}
		if f1 < PrimeraFilaEncabezado || f2 > UltimaFilaEncabezado {
			continue
		}
		inicio, _ := excelize.CoordinatesToCellName(c1, f1+desplazamiento)
		fin, _ := excelize.CoordinatesToCellName(c2, f2+desplazamiento)
		if err := c.destino.MergeCell(hojaDestino, inicio, fin); err != nil {
			return fmt.Errorf("combinar %s:%s: %w", inicio, fin, err)
		}
	}
	return nil
}

// CongelarPaneles deja fijas las columnas A-I y las filas hasta ultimaFilaFija.
func CongelarPaneles(f *excelize.File, hoja string, ultimaFilaFija int) error {
	celda, _ := excelize.CoordinatesToCellName(ColumnasFijas+1, ultimaFilaFija+1)
	return f.SetPanes(hoja, &excelize.Panes{
		Freeze:      true,
		XSplit:      ColumnasFijas,
		YSplit:      ultimaFilaFija,
		TopLeftCell: celda,
		ActivePane:  "bottomRight",
		Selection: []excelize.Selection{
			{SQRef: celda, ActiveCell: celda, Pane: "bottomRight"},
		},
	})
}

// encabezadoBasico escribe los nombres de la tabla de columnas cuando no hay plantilla.
func encabezadoBasico(f *excelize.File, hoja string) error {
	celda, _ := excelize.CoordinatesToCellName(ColumnaMarcador+1, UltimaFilaEncabezado)
	if err := f.SetCellValue(hoja, celda, "N°"); err != nil {
		return err
	}
	for _, c := range Columnas {
		celda, _ := excelize.CoordinatesToCellName(c.Columna+1, UltimaFilaEncabezado)
		if err := f.SetCellValue(hoja, celda, c.Nombre); err != nil {
			return err
		}
	}
	return CongelarPaneles(f, hoja, UltimaFilaEncabezado)
}
