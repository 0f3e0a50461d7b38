package models

import "time"

// Noticia maps the rows returned by fn_get_noticia / fn_crear_noticia.
// Noticias are immutable once created: there is no update or delete path.
type Noticia struct {
	IDNoticia   uint       `json:"id_noticia" gorm:"column:id_noticia;primarykey"`
	Titulo      string     `json:"titulo" gorm:"column:titulo"`
	Descripcion string     `json:"descripcion" gorm:"column:descripcion"`
	Imagen      string     `json:"imagen,omitempty" gorm:"column:imagen"`
	FechaHora   *time.Time `json:"fecha_hora,omitempty" gorm:"column:fecha_hora"`
}

func (Noticia) TableName() string {
	return "noticia"
}

// Timestamp returns the publish time in unix millis, 0 when the
// fecha is missing. Items without a fecha sort as the earliest.
func (n *Noticia) Timestamp() int64 {
	if n.FechaHora == nil {
		return 0
	}
	return n.FechaHora.UnixMilli()
}
