package repositories

import (
	"database/sql"

	"ifphub/models"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	ValidarCredenciales(email, password string) (*models.CredencialesRow, error)
	GetByID(id uint) (*models.Usuario, error)
	GetRol(id uint) (string, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// ValidarCredenciales calls fn_validar_usuario. A nil row with a nil
// error means the credentials did not match any usuario.
func (r *usuarioRepository) ValidarCredenciales(email, password string) (*models.CredencialesRow, error) {
	var rows []models.CredencialesRow
	err := r.db.Raw("SELECT * FROM fn_validar_usuario(?, ?)", email, password).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}

func (r *usuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// GetRol calls fn_get_rol_usuario, the fallback when the usuario row
// carries no rol.
func (r *usuarioRepository) GetRol(id uint) (string, error) {
	var row struct {
		Rol sql.NullString `gorm:"column:rol"`
	}
	err := r.db.Raw("SELECT fn_get_rol_usuario(?) AS rol", id).Scan(&row).Error
	if err != nil {
		return "", err
	}

	return row.Rol.String, nil
}
