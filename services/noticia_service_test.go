package services

import (
	"errors"
	"testing"
	"time"

	"ifphub/models"
	"ifphub/token"

	"github.com/stretchr/testify/assert"
)

type mockNoticiaRepo struct {
	noticias    []models.Noticia
	getAllErr   error
	byID        map[uint]*models.Noticia
	created     *models.Noticia
	createErr   error
	createCalls int
}

func (m *mockNoticiaRepo) GetAll() ([]models.Noticia, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.noticias, nil
}

func (m *mockNoticiaRepo) GetByID(id uint) (*models.Noticia, error) {
	return m.byID[id], nil
}

func (m *mockNoticiaRepo) Create(titulo, descripcion, imagen string, idUsuario uint) (*models.Noticia, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	now := time.Now()
	return &models.Noticia{IDNoticia: 1, Titulo: titulo, Descripcion: descripcion, Imagen: imagen, FechaHora: &now}, nil
}

// creatorFixture wires a noticia service whose gate accepts uid 7
// with rol "profesor".
func creatorFixture(t *testing.T, rol string) (NoticiaService, *mockNoticiaRepo, string) {
	t.Helper()

	usuarioRepo := &mockUsuarioRepo{
		getByIDFn: func(id uint) (*models.Usuario, error) {
			return &models.Usuario{IDUsuario: id, Rol: rol}, nil
		},
	}
	codec, err := token.NewCodec("noticia-test")
	assert.NoError(t, err)
	authSvc := NewAuthService(usuarioRepo, codec)

	repo := &mockNoticiaRepo{}
	svc := NewNoticiaService(repo, authSvc, []string{"admin", "profesor", "coordinador"})

	sig, err := codec.Encode(7)
	assert.NoError(t, err)

	return svc, repo, sig
}

func TestCreateNoticiaRejectsBlankFields(t *testing.T) {
	svc, repo, sig := creatorFixture(t, "profesor")

	cases := []models.CreateNoticiaRequest{
		{Titulo: "", Descripcion: "Texto", UID: 7, Sig: sig},
		{Titulo: "   ", Descripcion: "Texto", UID: 7, Sig: sig},
		{Titulo: "Feria", Descripcion: "", UID: 7, Sig: sig},
		{Titulo: "Feria", Descripcion: " \n ", UID: 7, Sig: sig},
	}

	for _, req := range cases {
		_, err := svc.CreateNoticia(req)
		assert.IsType(t, models.ErrorValidation{}, err)
	}

	assert.Zero(t, repo.createCalls, "no partial writes on validation failure")
}

func TestCreateNoticiaRejectsMissingSession(t *testing.T) {
	svc, repo, _ := creatorFixture(t, "profesor")

	_, err := svc.CreateNoticia(models.CreateNoticiaRequest{Titulo: "Feria", Descripcion: "Texto"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
	assert.Zero(t, repo.createCalls)
}

func TestCreateNoticiaRejectsForeignSig(t *testing.T) {
	svc, repo, _ := creatorFixture(t, "profesor")

	otherCodec, err := token.NewCodec("other-salt")
	assert.NoError(t, err)
	foreign, err := otherCodec.Encode(7)
	assert.NoError(t, err)

	_, createErr := svc.CreateNoticia(models.CreateNoticiaRequest{
		Titulo: "Feria", Descripcion: "Texto", UID: 7, Sig: foreign,
	})
	assert.IsType(t, models.ErrorUnauthorized{}, createErr)
	assert.Zero(t, repo.createCalls)
}

func TestCreateNoticiaRejectsNonCreatorRol(t *testing.T) {
	svc, repo, sig := creatorFixture(t, "alumno")

	_, err := svc.CreateNoticia(models.CreateNoticiaRequest{
		Titulo: "Feria", Descripcion: "Texto", UID: 7, Sig: sig,
	})
	assert.IsType(t, models.ErrorForbidden{}, err)
	assert.Zero(t, repo.createCalls)
}

func TestCreateNoticiaSuccessTrimsInput(t *testing.T) {
	svc, repo, sig := creatorFixture(t, "profesor")

	noticia, err := svc.CreateNoticia(models.CreateNoticiaRequest{
		Titulo:      "  Feria  ",
		Descripcion: " Texto ",
		Imagen:      " https://example.org/f.jpg ",
		UID:         7,
		Sig:         sig,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Feria", noticia.Titulo)
	assert.Equal(t, "Texto", noticia.Descripcion)
	assert.Equal(t, "https://example.org/f.jpg", noticia.Imagen)
	assert.NotZero(t, noticia.IDNoticia)
}

func TestCreateNoticiaUpstreamFailure(t *testing.T) {
	svc, repo, sig := creatorFixture(t, "admin")
	repo.createErr = errors.New("proc exploded")

	_, err := svc.CreateNoticia(models.CreateNoticiaRequest{
		Titulo: "Feria", Descripcion: "Texto", UID: 7, Sig: sig,
	})
	assert.IsType(t, models.ErrorInternalServer{}, err)
	assert.NotContains(t, err.Error(), "proc exploded")
}

func TestGetNoticiaNotFound(t *testing.T) {
	svc, _, _ := creatorFixture(t, "profesor")

	_, err := svc.GetNoticia(99)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestGetNoticiaSplitsParagraphs(t *testing.T) {
	usuarioRepo := &mockUsuarioRepo{}
	codec, _ := token.NewCodec("noticia-test")
	authSvc := NewAuthService(usuarioRepo, codec)

	now := time.Now()
	repo := &mockNoticiaRepo{
		byID: map[uint]*models.Noticia{
			4: {
				IDNoticia:   4,
				Titulo:      "Feria",
				Descripcion: "Primer parrafo.\n\nSegundo parrafo.",
				FechaHora:   &now,
			},
		},
	}
	svc := NewNoticiaService(repo, authSvc, nil)

	detalle, err := svc.GetNoticia(4)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Primer parrafo.", "Segundo parrafo."}, detalle.Parrafos)
	assert.Equal(t, 1, detalle.LecturaMin)
}

func TestGetNoticiasMapsUpstreamError(t *testing.T) {
	svc, repo, _ := creatorFixture(t, "profesor")
	repo.getAllErr = errors.New("boom")

	_, err := svc.GetNoticias()
	assert.IsType(t, models.ErrorInternalServer{}, err)
}

func TestGetNoticiasNeverNil(t *testing.T) {
	svc, _, _ := creatorFixture(t, "profesor")

	noticias, err := svc.GetNoticias()
	assert.NoError(t, err)
	assert.NotNil(t, noticias)
	assert.Empty(t, noticias)
}
