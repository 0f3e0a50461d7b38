package repositories

import (
	"ifphub/models"

	"gorm.io/gorm"
)

type NoticiaRepository interface {
	GetAll() ([]models.Noticia, error)
	GetByID(id uint) (*models.Noticia, error)
	Create(titulo, descripcion, imagen string, idUsuario uint) (*models.Noticia, error)
}

type noticiaRepository struct {
	db *gorm.DB
}

func NewNoticiaRepository(db *gorm.DB) NoticiaRepository {
	return &noticiaRepository{db: db}
}

func (r *noticiaRepository) GetAll() ([]models.Noticia, error) {
	var noticias []models.Noticia
	err := r.db.Raw("SELECT * FROM fn_get_noticia()").Scan(&noticias).Error
	if err != nil {
		return nil, err
	}
	return noticias, nil
}

// GetByID calls fn_get_noticia_por_id. A nil record with a nil error
// means the noticia does not exist.
func (r *noticiaRepository) GetByID(id uint) (*models.Noticia, error) {
	var noticias []models.Noticia
	err := r.db.Raw("SELECT * FROM fn_get_noticia_por_id(?)", id).Scan(&noticias).Error
	if err != nil {
		return nil, err
	}

	if len(noticias) == 0 {
		return nil, nil
	}

	return &noticias[0], nil
}

// Create persists exactly one record through fn_crear_noticia and
// returns the created row.
func (r *noticiaRepository) Create(titulo, descripcion, imagen string, idUsuario uint) (*models.Noticia, error) {
	var noticias []models.Noticia
	err := r.db.Raw(
		"SELECT * FROM fn_crear_noticia(?, ?, ?, ?)",
		titulo, descripcion, imagen, idUsuario,
	).Scan(&noticias).Error
	if err != nil {
		return nil, err
	}

	if len(noticias) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &noticias[0], nil
}
