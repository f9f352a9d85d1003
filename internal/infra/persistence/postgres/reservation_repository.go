package postgres

import (
	"context"
	"strings"
	"time"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// FindByID retrieves a reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByIDForUser retrieves a reservation only if it belongs to the given user.
func (repo *reservationRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, userID).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation for user")
	}

	return toReservationDomain(&reservationM), nil
}

// FindConfirmedByUser retrieves the user's confirmada reservation, if any.
func (repo *reservationRepository) FindConfirmedByUser(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ? AND status = ?", userID, entity.ReservationStatusConfirmed.String()).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirmed reservation by user")
	}

	return toReservationDomain(&reservationM), nil
}

// FindConfirmedByTable retrieves the confirmada reservation holding a table number, if any.
func (repo *reservationRepository) FindConfirmedByTable(ctx context.Context, tableNumber string) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("mesa_numero = ? AND status = ?", tableNumber, entity.ReservationStatusConfirmed.String()).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirmed reservation by table")
	}

	return toReservationDomain(&reservationM), nil
}

// FindConfirmed retrieves every confirmada reservation.
func (repo *reservationRepository) FindConfirmed(ctx context.Context) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.ReservationStatusConfirmed.String()).
		Order("mesa_numero ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find confirmed reservations")
	}

	return toReservationDomainSlice(reservationModels), nil
}

// FindByUser retrieves all reservations owned by a user, most recent first.
func (repo *reservationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("data_reserva DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by user")
	}

	return toReservationDomainSlice(reservationModels), nil
}

// Create persists a new reservation. The partial unique indexes on confirmed
// rows turn a concurrent double booking into a duplicate error; the violated
// index name tells a per-user conflict apart from a per-table one.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(err.Error(), "idx_reservas_usuario_ativa") {
				return repository.ErrDuplicateUserReservation
			}

			return repository.ErrDuplicateReservation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID

	return nil
}

// Update modifies an existing reservation.
func (repo *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", reservation.ID).
		Updates(map[string]any{
			"status":            reservationM.Status,
			"data_cancelamento": reservationM.DataCancelam,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// List returns a page of reservations matching the filter and the total match count.
func (repo *reservationRepository) List(ctx context.Context, filter repository.ReservationListFilter) ([]*entity.Reservation, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReservationModel{})

	if filter.TableType != "" {
		query = query.Where("mesa_tipo = ?", filter.TableType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reservations")
	}

	var reservationModels []*model.ReservationModel
	if err := query.
		Order("data_reserva DESC").
		Offset(pageOffset(filter.Page, filter.PerPage)).
		Limit(pageLimit(filter.PerPage)).
		Find(&reservationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reservations")
	}

	return toReservationDomainSlice(reservationModels), total, nil
}

// CountConfirmed returns the number of confirmada reservations.
func (repo *reservationRepository) CountConfirmed(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("status = ?", entity.ReservationStatusConfirmed.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count confirmed reservations")
	}

	return count, nil
}

// CountConfirmedByType returns the number of confirmada reservations for a table type.
func (repo *reservationRepository) CountConfirmedByType(ctx context.Context, tableType string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("status = ? AND mesa_tipo = ?", entity.ReservationStatusConfirmed.String(), tableType).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count confirmed reservations by type")
	}

	return count, nil
}

// CountCreatedSince returns the number of reservations made at or after the given time.
func (repo *reservationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("data_reserva >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent reservations")
	}

	return count, nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:            data.ID,
		UserID:        data.UsuarioID,
		TableNumber:   data.MesaNumero,
		TableType:     data.MesaTipo,
		TableCapacity: data.MesaCapacidade,
		TableLocation: data.MesaLocalizacao,
		Status:        entity.ReservationStatus(data.Status),
		ReservedAt:    data.DataReserva,
		CancelledAt:   data.DataCancelam,
	}
}

func toReservationDomainSlice(models []*model.ReservationModel) []*entity.Reservation {
	reservations := make([]*entity.Reservation, 0, len(models))
	for _, reservationM := range models {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:              data.ID,
		UsuarioID:       data.UserID,
		MesaNumero:      data.TableNumber,
		MesaTipo:        data.TableType,
		MesaCapacidade:  data.TableCapacity,
		MesaLocalizacao: data.TableLocation,
		Status:          data.Status.String(),
		DataReserva:     data.ReservedAt,
		DataCancelam:    data.CancelledAt,
	}
}
