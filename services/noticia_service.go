package services

import (
	"log"
	"strings"

	"ifphub/helper"
	"ifphub/models"
	"ifphub/repositories"
	"ifphub/session"
)

type NoticiaService interface {
	GetNoticias() ([]models.Noticia, error)
	GetNoticia(id uint) (*models.NoticiaDetalle, error)
	CreateNoticia(req models.CreateNoticiaRequest) (*models.Noticia, error)
}

type noticiaService struct {
	noticiaRepo  repositories.NoticiaRepository
	authService  AuthService
	creatorRoles []string
}

func NewNoticiaService(noticiaRepo repositories.NoticiaRepository, authService AuthService, creatorRoles []string) NoticiaService {
	return &noticiaService{
		noticiaRepo:  noticiaRepo,
		authService:  authService,
		creatorRoles: creatorRoles,
	}
}

func (s *noticiaService) GetNoticias() ([]models.Noticia, error) {
	noticias, err := s.noticiaRepo.GetAll()
	if err != nil {
		log.Printf("fn_get_noticia failed: %v", err)
		return nil, models.ErrorInternalServer{Message: "Error al obtener noticias"}
	}

	if noticias == nil {
		noticias = []models.Noticia{}
	}
	return noticias, nil
}

func (s *noticiaService) GetNoticia(id uint) (*models.NoticiaDetalle, error) {
	noticia, err := s.noticiaRepo.GetByID(id)
	if err != nil {
		log.Printf("fn_get_noticia_por_id failed for %d: %v", id, err)
		return nil, models.ErrorInternalServer{Message: "Error al obtener la noticia"}
	}

	if noticia == nil {
		return nil, models.ErrorNotFound{Message: "Noticia no encontrada"}
	}

	texto := strings.TrimSpace(noticia.Titulo + " " + noticia.Descripcion)

	return &models.NoticiaDetalle{
		Noticia:    *noticia,
		Parrafos:   helper.SplitParagraphs(noticia.Descripcion),
		LecturaMin: helper.EstimateReadingTime(texto),
	}, nil
}

// CreateNoticia runs the full publish flow: field validation, session
// presence, sig/uid correspondence, creator rol, then exactly one
// fn_crear_noticia call. Every check happens before the write.
func (s *noticiaService) CreateNoticia(req models.CreateNoticiaRequest) (*models.Noticia, error) {
	titulo := strings.TrimSpace(req.Titulo)
	descripcion := strings.TrimSpace(req.Descripcion)

	if titulo == "" || descripcion == "" {
		return nil, models.ErrorValidation{Message: "Titulo y descripcion son obligatorios"}
	}

	sess := session.NewContext(req.UID, req.Sig)
	if _, err := s.authService.Authorize(sess, req.UID, req.Sig, s.creatorRoles); err != nil {
		return nil, err
	}

	noticia, err := s.noticiaRepo.Create(titulo, descripcion, strings.TrimSpace(req.Imagen), req.UID)
	if err != nil {
		log.Printf("fn_crear_noticia failed: %v", err)
		return nil, models.ErrorInternalServer{Message: "No se pudo crear la noticia."}
	}

	return noticia, nil
}
