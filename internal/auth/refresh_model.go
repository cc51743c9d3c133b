package auth

import "time"

type RefreshToken struct {
	ID        uint       `gorm:"primaryKey"`
	UsuarioID uint       `gorm:"index"`
	FamiliaID string     `gorm:"index"`
	Hash      string     `gorm:"uniqueIndex"`
	EsAdmin   bool       `gorm:"default:false"`
	ExpiresAt time.Time  `gorm:"index"`
	RevokedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}
