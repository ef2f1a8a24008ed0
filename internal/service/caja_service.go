package service

import (
	"context"
	"errors"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/model"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	abrirCajaLockTTL   = 5 * time.Second
	abrirCajaLockRetry = 100 * time.Millisecond
)

// CajaService manages cash register sessions and their movement ledger.
type CajaService struct {
	cajas  repository.CajaRepository
	locker *redislock.Client
	log    zerolog.Logger
}

// NewCajaService builds the service. locker may be nil; without it the open
// operation relies solely on the partial unique index.
func NewCajaService(cajas repository.CajaRepository, locker *redislock.Client, log zerolog.Logger) *CajaService {
	return &CajaService{cajas: cajas, locker: locker, log: log}
}

// AbrirCaja opens a session for the user. The check-then-create sequence is
// serialized per user with an advisory lock, and the partial unique index on
// (usuario_id) WHERE estado = 'abierta' backstops the race at the storage
// level.
func (s *CajaService) AbrirCaja(ctx context.Context, req dto.AbrirCajaRequest) (*model.Caja, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	if s.locker != nil {
		lock, err := s.locker.Obtain(ctx, "caja:abrir:"+req.UsuarioID, abrirCajaLockTTL, &redislock.Options{
			RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(abrirCajaLockRetry), 10),
		})
		if err != nil {
			if errors.Is(err, redislock.ErrNotObtained) {
				return nil, apierror.Conflict("El usuario ya tiene una apertura de caja en curso")
			}
			return nil, err
		}
		defer func() {
			if err := lock.Release(ctx); err != nil {
				s.log.Warn().Err(err).Msg("no se pudo liberar el lock de apertura de caja")
			}
		}()
	}

	if _, err := s.cajas.FindCajaAbiertaPorUsuario(ctx, usuarioID); err == nil {
		return nil, apierror.Conflict("El usuario ya tiene una caja abierta")
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	caja := &model.Caja{
		UsuarioID:     usuarioID,
		FechaApertura: time.Now(),
		MontoApertura: req.MontoApertura,
		Estado:        model.CajaAbierta,
	}
	if err := s.cajas.CreateCaja(ctx, caja); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.Conflict("El usuario ya tiene una caja abierta")
		}
		return nil, err
	}

	s.log.Info().
		Str("caja_id", caja.ID.String()).
		Str("usuario_id", req.UsuarioID).
		Msg("caja abierta")
	return caja, nil
}

// BuscarCajaAbierta returns the user's current open session.
func (s *CajaService) BuscarCajaAbierta(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	caja, err := s.cajas.FindCajaAbiertaPorUsuario(ctx, usuarioID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("No hay una caja abierta para el usuario")
		}
		return nil, err
	}
	return caja, nil
}

// CerrarCaja closes a session, recording the counted closing amount and the
// user who performed the close. Closing is terminal: a closed session is
// never reopened, so the request's estado only admits cerrada.
func (s *CajaService) CerrarCaja(ctx context.Context, req dto.CerrarCajaRequest) (*model.Caja, error) {
	cajaID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, apierror.BadRequest("ID de caja inválido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	caja, err := s.cajas.FindCajaByID(ctx, cajaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Caja no encontrada")
		}
		return nil, err
	}
	if caja.Estado == model.CajaCerrada {
		return nil, apierror.BadRequest("La caja ya está cerrada")
	}

	now := time.Now()
	caja.Estado = req.Estado
	caja.FechaCierre = &now
	caja.MontoCierre = &req.MontoCierre
	caja.Comentario = req.Comentario
	caja.UsuarioID = usuarioID

	if err := s.cajas.UpdateCaja(ctx, caja); err != nil {
		return nil, err
	}

	s.log.Info().Str("caja_id", caja.ID.String()).Msg("caja cerrada")
	return caja, nil
}

// RegistrarMovimientoTx appends a ledger entry inside the caller's
// transaction. The caller is responsible for having resolved an open session.
func (s *CajaService) RegistrarMovimientoTx(tx *gorm.DB, p dto.CajaMovimientoParams) (*model.CajaMovimiento, error) {
	cajaID, err := uuid.Parse(p.CajaID)
	if err != nil {
		return nil, apierror.BadRequest("ID de caja inválido")
	}
	usuarioID, err := uuid.Parse(p.UsuarioID)
	if err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}

	mov := &model.CajaMovimiento{
		CajaID:         cajaID,
		TipoMovimiento: p.TipoMovimiento,
		MetodoPagoID:   p.MetodoPagoID,
		Monto:          p.Monto,
		UsuarioID:      usuarioID,
		Fecha:          time.Now(),
	}
	if p.DocumentoID != "" {
		docID, err := uuid.Parse(p.DocumentoID)
		if err != nil {
			return nil, apierror.BadRequest("ID de documento inválido")
		}
		mov.DocumentoID = &docID
		mov.TipoDocumento = &p.TipoDocumento
	}

	if err := s.cajas.CreateMovimientoTx(tx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// MontoTotalCajaActual aggregates the open session's movements per payment
// method. 404 when the user has no open session.
func (s *CajaService) MontoTotalCajaActual(ctx context.Context, usuarioID uuid.UUID) ([]dto.MontoPorMetodo, error) {
	caja, err := s.cajas.FindCajaAbiertaPorUsuario(ctx, usuarioID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("No hay una caja abierta para el usuario")
		}
		return nil, err
	}

	rows, err := s.cajas.MontoTotalPorMetodo(ctx, caja.ID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.MontoPorMetodo{}
	}
	return rows, nil
}

// UltimaCajaMovimiento returns the user's most recent session, open or
// closed, with its full movement log.
func (s *CajaService) UltimaCajaMovimiento(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	caja, err := s.cajas.UltimaCajaConMovimientos(ctx, usuarioID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("El usuario no tiene cajas registradas")
		}
		return nil, err
	}
	return caja, nil
}

// UltimasCajasUsuario pages through the user's session history.
func (s *CajaService) UltimasCajasUsuario(ctx context.Context, q dto.CajaHistorialQuery) (*dto.CajaHistorialResponse, error) {
	if _, err := uuid.Parse(q.UsuarioID); err != nil {
		return nil, apierror.BadRequest("ID de usuario inválido")
	}
	q.Normalize()

	cajas, total, err := s.cajas.ListCajasUsuario(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.CajaHistorialResponse{
		Data: cajas,
		Meta: dto.NewPageMeta(total, len(cajas), q.Limit, q.Page),
	}, nil
}
