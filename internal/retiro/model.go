package retiro

import (
	"errors"
	"time"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
	"github.com/shopspring/decimal"
)

// Retiro registra la desvinculación y liquidación de un trabajador en un año.
type Retiro struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TrabajadorID uint `gorm:"not null;uniqueIndex:idx_retiro_trabajador_anio" json:"trabajadorId"`
	Anio         int  `gorm:"not null;index;uniqueIndex:idx_retiro_trabajador_anio" json:"anio"`

	FechaRetiro       models.Fecha        `gorm:"type:date" json:"fechaRetiro"`
	FechaLiquidacion  models.Fecha        `gorm:"type:date" json:"fechaLiquidacion"`
	ValorLiquidacion  decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"valorLiquidacion"`
	FechaExamenRetiro models.Fecha        `gorm:"type:date" json:"fechaExamenRetiro"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Retiro) TableName() string { return "retiro" }

func (r *Retiro) Validar() error {
	if r.ValorLiquidacion.Valid && r.ValorLiquidacion.Decimal.IsNegative() {
		return errors.New("valorLiquidacion no puede ser negativo")
	}
	if r.FechaRetiro.Valid && r.FechaLiquidacion.Valid && r.FechaLiquidacion.Time.Before(r.FechaRetiro.Time) {
		return errors.New("fechaLiquidacion anterior a fechaRetiro")
	}
	return nil
}
