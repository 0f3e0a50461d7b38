package services

import (
	"log"

	"ifphub/models"
	"ifphub/repositories"
	"ifphub/session"
	"ifphub/token"
)

type AuthService interface {
	Login(req models.LoginRequest) (*models.UsuarioSesion, error)
	VerifySig(uid uint, sig string) bool
	ResolveRol(uid uint) (string, error)
	Authorize(sess *session.Context, uid uint, sig string, allowed []string) (string, error)
}

type authService struct {
	usuarioRepo repositories.UsuarioRepository
	codec       *token.Codec
}

func NewAuthService(usuarioRepo repositories.UsuarioRepository, codec *token.Codec) AuthService {
	return &authService{usuarioRepo: usuarioRepo, codec: codec}
}

// Login validates credentials through fn_validar_usuario, derives the
// sig for the uid and assembles the session profile, preferring the
// usuario table over the procedure's row and falling back to
// fn_get_rol_usuario when neither carries a rol.
func (s *authService) Login(req models.LoginRequest) (*models.UsuarioSesion, error) {
	row, err := s.usuarioRepo.ValidarCredenciales(req.Email, req.Password)
	if err != nil {
		log.Printf("fn_validar_usuario failed: %v", err)
		return nil, models.ErrorInternalServer{Message: "Error interno del servidor"}
	}

	if row == nil {
		return nil, models.ErrorUnauthorized{Message: "Correo o contraseña incorrectos"}
	}

	sig, err := s.codec.Encode(row.IDUsuario)
	if err != nil {
		log.Printf("sig encode failed for uid %d: %v", row.IDUsuario, err)
		return nil, models.ErrorInternalServer{Message: "Error interno del servidor"}
	}

	sesion := &models.UsuarioSesion{
		UID:      row.IDUsuario,
		Sig:      sig,
		Nombre:   row.Nombre,
		Apellido: row.Apellido,
		Mail:     row.Mail,
		Rol:      row.Rol,
	}

	// Profile fallback: the procedure row may be partial.
	if perfil, err := s.usuarioRepo.GetByID(row.IDUsuario); err == nil && perfil != nil {
		if perfil.Nombre != "" {
			sesion.Nombre = perfil.Nombre
		}
		if perfil.Apellido != "" {
			sesion.Apellido = perfil.Apellido
		}
		if perfil.Mail != "" {
			sesion.Mail = perfil.Mail
		}
		if perfil.Rol != "" {
			sesion.Rol = perfil.Rol
		}
	}

	if sesion.Rol == "" {
		if rol, err := s.usuarioRepo.GetRol(row.IDUsuario); err == nil {
			sesion.Rol = rol
		}
	}

	sesion.Rol = models.NormalizeRol(sesion.Rol)
	return sesion, nil
}

// VerifySig reports whether sig decodes back to exactly uid.
func (s *authService) VerifySig(uid uint, sig string) bool {
	decoded, ok := s.codec.Decode(sig)
	return ok && decoded == uid
}

// ResolveRol reads the rol from the usuario table and falls back to
// fn_get_rol_usuario when the row is missing or carries no rol.
func (s *authService) ResolveRol(uid uint) (string, error) {
	perfil, err := s.usuarioRepo.GetByID(uid)
	if err == nil && perfil != nil && perfil.Rol != "" {
		return models.NormalizeRol(perfil.Rol), nil
	}

	rol, rpcErr := s.usuarioRepo.GetRol(uid)
	if rpcErr != nil {
		log.Printf("rol lookup failed for uid %d: %v / %v", uid, err, rpcErr)
		return "", rpcErr
	}

	return models.NormalizeRol(rol), nil
}

// Authorize is the per-request gate. It checks that the session
// fields are present, that the sig is bound to the uid, and - when a
// restriction applies - that the rol is in the allowed set. A failed
// rol fetch is treated as forbidden, never retried. The session's rol
// cache is consulted first and updated on a successful fetch; it
// self-invalidates when the bound uid changes.
func (s *authService) Authorize(sess *session.Context, uid uint, sig string, allowed []string) (string, error) {
	if uid == 0 || sig == "" {
		return "", models.ErrorUnauthorized{Message: "Sesion invalida. Inicia sesion de nuevo."}
	}

	if !s.VerifySig(uid, sig) {
		return "", models.ErrorUnauthorized{Message: "No autorizado."}
	}

	rol := sess.Rol(uid)
	if rol == "" {
		fetched, err := s.ResolveRol(uid)
		if err != nil {
			// Fail closed: identity is valid, permission is unknown.
			return "", models.ErrorForbidden{Message: "No se pudo verificar el rol."}
		}
		rol = fetched
		if rol != "" {
			sess.SetRol(uid, rol)
		}
	}

	if len(allowed) == 0 {
		return rol, nil
	}

	for _, a := range allowed {
		if rol == a {
			return rol, nil
		}
	}

	return rol, models.ErrorForbidden{Message: "No tienes permisos para esta accion."}
}
