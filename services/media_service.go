package services

import (
	"context"
	"io"
	"log"

	"ifphub/models"
	"ifphub/storage"
)

type MediaService interface {
	UploadImagen(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type mediaService struct {
	storage storage.Storage
}

func NewMediaService(st storage.Storage) MediaService {
	return &mediaService{storage: st}
}

// UploadImagen stores an image for a noticia and returns the URL to
// put in its imagen field.
func (s *mediaService) UploadImagen(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	if s.storage == nil {
		return "", models.ErrorInternalServer{Message: "Almacenamiento de imagenes no configurado"}
	}

	url, err := s.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		return "", models.ErrorInternalServer{Message: "No se pudo subir la imagen"}
	}

	return url, nil
}
