package handler

import (
	"time"

	"encontro/internal/domain/entity"

	"github.com/google/uuid"
)

// View models mirror the JSON shapes consumed by the existing frontend, so
// the field names stay in Portuguese snake_case.

type userView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"nome_completo"`
	Email     string    `json:"email"`
	Descent   string    `json:"descendencia"`
	Age       int       `json:"idade"`
	City      string    `json:"cidade_residencia"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"is_active"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Descent:   user.Descent.String(),
		Age:       user.Age,
		City:      user.City,
		CreatedAt: user.CreatedAt,
		Active:    user.Active,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

type adminView struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"nome_completo"`
	Email       string     `json:"email"`
	AccessLevel string     `json:"nivel_acesso"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login"`
	Active      bool       `json:"is_active"`
}

func newAdminView(admin *entity.Admin) adminView {
	return adminView{
		ID:          admin.ID,
		FullName:    admin.FullName,
		Email:       admin.Email,
		AccessLevel: admin.AccessLevel.String(),
		CreatedAt:   admin.CreatedAt,
		LastLogin:   admin.LastLogin,
		Active:      admin.Active,
	}
}

type orderView struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"usuario_id"`
	ShirtCount int        `json:"total_camisas"`
	Total      float64    `json:"valor_total"`
	UnitPrice  float64    `json:"preco_unitario"`
	ShirtsJSON string     `json:"camisas_json"`
	Status     string     `json:"status"`
	OrderedAt  time.Time  `json:"data_pedido"`
	PaidAt     *time.Time `json:"data_pagamento"`
}

func newOrderView(order *entity.Order) orderView {
	return orderView{
		ID:         order.ID,
		UserID:     order.UserID,
		ShirtCount: order.ShirtCount,
		Total:      order.Total,
		UnitPrice:  order.UnitPrice,
		ShirtsJSON: order.ShirtsJSON,
		Status:     order.Status.String(),
		OrderedAt:  order.OrderedAt,
		PaidAt:     order.PaidAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

type paymentView struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           uuid.UUID  `json:"pedido_id"`
	UserID            uuid.UUID  `json:"usuario_id"`
	Method            string     `json:"metodo_pagamento"`
	Amount            float64    `json:"valor"`
	Status            string     `json:"status"`
	PixPaymentsJSON   string     `json:"pix_pagamentos_json"`
	ReceiptFilename   string     `json:"comprovante_filename"`
	Installments      int        `json:"parcelas"`
	InstallmentAmount float64    `json:"valor_parcela"`
	PaidAt            time.Time  `json:"data_pagamento"`
	ConfirmedAt       *time.Time `json:"data_confirmacao"`
}

func newPaymentView(payment *entity.Payment) paymentView {
	return paymentView{
		ID:                payment.ID,
		OrderID:           payment.OrderID,
		UserID:            payment.UserID,
		Method:            payment.Method.String(),
		Amount:            payment.Amount,
		Status:            payment.Status.String(),
		PixPaymentsJSON:   payment.PixPaymentsJSON,
		ReceiptFilename:   payment.ReceiptFilename,
		Installments:      payment.Installments,
		InstallmentAmount: payment.InstallmentAmount,
		PaidAt:            payment.PaidAt,
		ConfirmedAt:       payment.ConfirmedAt,
	}
}

func newPaymentViews(payments []*entity.Payment) []paymentView {
	views := make([]paymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, newPaymentView(payment))
	}

	return views
}

type reservationView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"usuario_id"`
	TableNumber   string     `json:"mesa_numero"`
	TableType     string     `json:"mesa_tipo"`
	TableCapacity int        `json:"mesa_capacidade"`
	TableLocation string     `json:"mesa_localizacao"`
	Status        string     `json:"status"`
	ReservedAt    time.Time  `json:"data_reserva"`
	CancelledAt   *time.Time `json:"data_cancelamento"`
}

func newReservationView(reservation *entity.Reservation) reservationView {
	return reservationView{
		ID:            reservation.ID,
		UserID:        reservation.UserID,
		TableNumber:   reservation.TableNumber,
		TableType:     reservation.TableType,
		TableCapacity: reservation.TableCapacity,
		TableLocation: reservation.TableLocation,
		Status:        reservation.Status.String(),
		ReservedAt:    reservation.ReservedAt,
		CancelledAt:   reservation.CancelledAt,
	}
}

func newReservationViews(reservations []*entity.Reservation) []reservationView {
	views := make([]reservationView, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, newReservationView(reservation))
	}

	return views
}

type tableView struct {
	Number   string `json:"numero"`
	Type     string `json:"tipo"`
	Capacity int    `json:"capacidade"`
	Location string `json:"localizacao"`
	Reserved bool   `json:"reservada"`
}

type auditLogView struct {
	ID            uuid.UUID  `json:"id"`
	AdminID       uuid.UUID  `json:"admin_id"`
	Action        string     `json:"acao"`
	Description   string     `json:"descricao"`
	AffectedTable string     `json:"tabela_afetada"`
	RecordID      *uuid.UUID `json:"registro_id"`
	BeforeJSON    string     `json:"dados_anteriores"`
	AfterJSON     string     `json:"dados_novos"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	Timestamp     time.Time  `json:"timestamp"`
}

func newAuditLogViews(logs []*entity.AuditLog) []auditLogView {
	views := make([]auditLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, auditLogView{
			ID:            log.ID,
			AdminID:       log.AdminID,
			Action:        log.Action,
			Description:   log.Description,
			AffectedTable: log.AffectedTable,
			RecordID:      log.RecordID,
			BeforeJSON:    log.BeforeJSON,
			AfterJSON:     log.AfterJSON,
			IPAddress:     log.IPAddress,
			UserAgent:     log.UserAgent,
			Timestamp:     log.Timestamp,
		})
	}

	return views
}
