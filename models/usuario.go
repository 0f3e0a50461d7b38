package models

import "strings"

// NormalizeRol trims and lowercases a rol before any comparison; the
// database is inconsistent about casing.
func NormalizeRol(rol string) string {
	return strings.ToLower(strings.TrimSpace(rol))
}

// Usuario is the direct read on the usuario table, used as profile/rol
// fallback after fn_validar_usuario.
type Usuario struct {
	IDUsuario uint   `json:"id_usuario" gorm:"column:id_usuario;primarykey"`
	Nombre    string `json:"nombre" gorm:"column:nombre"`
	Apellido  string `json:"apellido" gorm:"column:apellido"`
	Mail      string `json:"mail" gorm:"column:mail"`
	Rol       string `json:"rol" gorm:"column:rol"`
}

func (Usuario) TableName() string {
	return "usuario"
}

// CredencialesRow is the row shape fn_validar_usuario returns on a
// successful email/password check.
type CredencialesRow struct {
	IDUsuario uint   `gorm:"column:id_usuario"`
	Nombre    string `gorm:"column:nombre"`
	Apellido  string `gorm:"column:apellido"`
	Mail      string `gorm:"column:mail"`
	Rol       string `gorm:"column:rol"`
}
