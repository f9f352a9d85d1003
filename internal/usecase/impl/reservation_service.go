package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "encontro/internal/delivery/context"
	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for reservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		logger:          params.Logger,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTables returns the full catalog with per-table availability.
func (srv *reservationService) ListTables(ctx context.Context) ([]usecase.TableAvailability, error) {
	confirmed, err := srv.reservationRepo.FindConfirmed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load confirmed reservations")
	}

	reservedNumbers := make(map[string]struct{}, len(confirmed))
	for _, reservation := range confirmed {
		reservedNumbers[reservation.TableNumber] = struct{}{}
	}

	tables := make([]usecase.TableAvailability, 0, len(entity.TableCatalog))
	for _, table := range entity.TableCatalog {
		_, reserved := reservedNumbers[table.Number]
		tables = append(tables, usecase.TableAvailability{
			Table:    table,
			Reserved: reserved,
		})
	}

	return tables, nil
}

// Reserve books a catalog table for the user. The submitted attributes must
// match the catalog entry exactly, and both uniqueness rules (one active
// reservation per user, one per table) are enforced inside a transaction
// backed by partial unique indexes.
func (srv *reservationService) Reserve(ctx context.Context, userID uuid.UUID, input usecase.ReserveTableInput) (*entity.Reservation, error) {
	table, found := entity.FindTable(input.TableNumber)
	if !found {
		return nil, domainerrors.ErrTableNotFound
	}

	if !table.Matches(input.TableType, input.TableCapacity, input.TableLocation) {
		return nil, domainerrors.ErrTableDataMismatch
	}

	reservation := &entity.Reservation{
		UserID:        userID,
		TableNumber:   table.Number,
		TableType:     table.Type,
		TableCapacity: table.Capacity,
		TableLocation: table.Location,
		Status:        entity.ReservationStatusConfirmed,
		ReservedAt:    time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()

		// Friendly checks first; the partial unique indexes still close
		// the race if two requests pass them concurrently.
		_, err := reservationRepo.FindConfirmedByUser(ctx, userID)
		if err == nil {
			return domainerrors.ErrReservationExists
		}
		if !errors.Is(err, repository.ErrReservationNotFound) {
			return errors.Wrap(err, "failed to check existing reservation")
		}

		_, err = reservationRepo.FindConfirmedByTable(ctx, table.Number)
		if err == nil {
			return domainerrors.ErrTableAlreadyReserved
		}
		if !errors.Is(err, repository.ErrReservationNotFound) {
			return errors.Wrap(err, "failed to check table availability")
		}

		if err := reservationRepo.Create(ctx, reservation); err != nil {
			if errors.Is(err, repository.ErrDuplicateUserReservation) {
				return domainerrors.ErrReservationExists
			}
			if errors.Is(err, repository.ErrDuplicateReservation) {
				return domainerrors.ErrTableAlreadyReserved
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Table reserved",
		slog.Any("reservationID", reservation.ID),
		slog.Any("userID", userID),
		slog.String("table", table.Number))

	return reservation, nil
}

// ListReservations returns the user's reservations, most recent first.
func (srv *reservationService) ListReservations(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reservations, nil
}

// CurrentReservation returns the user's confirmada reservation, or nil when
// the user holds none.
func (srv *reservationService) CurrentReservation(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindConfirmedByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find current reservation")
	}

	return reservation, nil
}

// Cancel releases the user's reservation.
func (srv *reservationService) Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error) {
	var cancelled *entity.Reservation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()

		reservation, err := reservationRepo.FindByIDForUser(ctx, reservationID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrReservationNotFound) {
				return domainerrors.ErrReservationNotFound
			}

			return errors.Wrap(err, "failed to find reservation for cancellation")
		}

		if !reservation.CanCancel() {
			return domainerrors.ErrReservationNotActive
		}

		now := time.Now()
		reservation.Status = entity.ReservationStatusCancelled
		reservation.CancelledAt = &now
		if err := reservationRepo.Update(ctx, reservation); err != nil {
			return err
		}

		cancelled = reservation

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reservation cancelled",
		slog.Any("reservationID", reservationID),
		slog.Any("userID", userID))

	return cancelled, nil
}
