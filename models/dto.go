package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioSesion is the payload a successful login hands back to the
// client: identity, the sig token bound to it and the profile fields
// the header renders.
type UsuarioSesion struct {
	UID      uint   `json:"uid"`
	Sig      string `json:"sig"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Mail     string `json:"mail"`
	Rol      string `json:"rol"`
}

type CreateNoticiaRequest struct {
	Titulo      string `json:"titulo" validate:"required,max=120"`
	Descripcion string `json:"descripcion" validate:"required"`
	Imagen      string `json:"imagen"`
	UID         uint   `json:"uid"`
	Sig         string `json:"sig"`
}

type SearchParams struct {
	Query string `form:"q"`
	Desde string `form:"desde"`
	Hasta string `form:"hasta"`
}

// SearchResult decorates a noticia with its relevance score and the
// estimated reading time in minutes.
type SearchResult struct {
	Noticia
	Score      int `json:"score"`
	LecturaMin int `json:"lectura_min"`
}

type SearchStats struct {
	Resultados int `json:"resultados"`
	Hoy        int `json:"hoy"`
	Semana     int `json:"semana"`
}

type SearchResponse struct {
	Data        []SearchResult `json:"data"`
	Stats       SearchStats    `json:"stats"`
	Sugerencias []string       `json:"sugerencias"`
}

// NoticiaDetalle is the detail view: the record plus its body split
// into paragraphs on blank lines.
type NoticiaDetalle struct {
	Noticia
	Parrafos   []string `json:"parrafos"`
	LecturaMin int      `json:"lectura_min"`
}
