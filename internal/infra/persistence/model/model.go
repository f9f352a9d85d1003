package model

// All returns every persisted model in migration order. AutoMigrate runs
// over this list at startup, which also creates the partial unique indexes
// declared in the struct tags.
func All() []any {
	return []any{
		&UserModel{},
		&AdminModel{},
		&OrderModel{},
		&PaymentModel{},
		&ReservationModel{},
		&AuditLogModel{},
	}
}
