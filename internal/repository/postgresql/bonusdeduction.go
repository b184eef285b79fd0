package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/bonusdeduction"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bonusDeductionRepositoryImpl struct {
	db *database.DB
}

func NewBonusDeductionRepository(db *database.DB) bonusdeduction.BonusDeductionRepository {
	return &bonusDeductionRepositoryImpl{db: db}
}

// Create implements bonusdeduction.BonusDeductionRepository. The procedure
// also appends to bonus_deduction_log.
func (b *bonusDeductionRepositoryImpl) Create(ctx context.Context, bd bonusdeduction.BonusDeduction) (int64, error) {
	var id int64
	err := WithTransaction(ctx, b.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_add_bonus_deduction($1, $2, $3, $4, $5)`,
			bd.EmployeeID, string(bd.Type), bd.Amount, bd.Description, bd.Date,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// Update implements bonusdeduction.BonusDeductionRepository. The log row
// is written in the same transaction as the update.
func (b *bonusDeductionRepositoryImpl) Update(ctx context.Context, id int64, bd bonusdeduction.BonusDeduction) error {
	err := WithTransaction(ctx, b.db, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx,
			`UPDATE bonus_deductions SET amount = $1, description = $2 WHERE id = $3`,
			bd.Amount, bd.Description, id,
		)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return bonusdeduction.ErrBonusDeductionNotFound
		}
		_, execErr = tx.Exec(ctx,
			`INSERT INTO bonus_deduction_log (bonus_deduction_id, employee_id, action, amount, logged_at)
			SELECT id, employee_id, 'UPDATE', amount, NOW() FROM bonus_deductions WHERE id = $1`,
			id,
		)
		return execErr
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// Delete implements bonusdeduction.BonusDeductionRepository.
func (b *bonusDeductionRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := WithTransaction(ctx, b.db, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx,
			`INSERT INTO bonus_deduction_log (bonus_deduction_id, employee_id, action, amount, logged_at)
			SELECT id, employee_id, 'DELETE', amount, NOW() FROM bonus_deductions WHERE id = $1`,
			id,
		)
		if execErr != nil {
			return execErr
		}
		tag, execErr := tx.Exec(ctx, `DELETE FROM bonus_deductions WHERE id = $1`, id)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return bonusdeduction.ErrBonusDeductionNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// GetByID implements bonusdeduction.BonusDeductionRepository.
func (b *bonusDeductionRepositoryImpl) GetByID(ctx context.Context, id int64) (bonusdeduction.BonusDeduction, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT bd.id, bd.employee_id, bd.type, bd.amount, bd.description, bd.bd_date, e.full_name
		FROM bonus_deductions bd
		JOIN employees e ON e.id = bd.employee_id
		WHERE bd.id = $1
	`

	var bd bonusdeduction.BonusDeduction
	err := q.QueryRow(ctx, query, id).Scan(
		&bd.ID, &bd.EmployeeID, &bd.Type, &bd.Amount, &bd.Description, &bd.Date,
		&bd.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonusdeduction.BonusDeduction{}, bonusdeduction.ErrBonusDeductionNotFound
		}
		return bonusdeduction.BonusDeduction{}, apperr.Translate(err)
	}
	return bd, nil
}

// ListByEmployee implements bonusdeduction.BonusDeductionRepository. Month
// and year are optional; zero means no filter.
func (b *bonusDeductionRepositoryImpl) ListByEmployee(ctx context.Context, filter bonusdeduction.ListBonusDeductionFilter) ([]bonusdeduction.BonusDeduction, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT bd.id, bd.employee_id, bd.type, bd.amount, bd.description, bd.bd_date, e.full_name
		FROM bonus_deductions bd
		JOIN employees e ON e.id = bd.employee_id
		WHERE bd.employee_id = $1
			AND ($2 = 0 OR EXTRACT(MONTH FROM bd.bd_date) = $2)
			AND ($3 = 0 OR EXTRACT(YEAR FROM bd.bd_date) = $3)
		ORDER BY bd.bd_date
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var records []bonusdeduction.BonusDeduction
	for rows.Next() {
		var bd bonusdeduction.BonusDeduction
		err := rows.Scan(
			&bd.ID, &bd.EmployeeID, &bd.Type, &bd.Amount, &bd.Description, &bd.Date,
			&bd.EmployeeName,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		records = append(records, bd)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return records, nil
}

// ListLog implements bonusdeduction.BonusDeductionRepository.
func (b *bonusDeductionRepositoryImpl) ListLog(ctx context.Context, employeeID int64) ([]bonusdeduction.LogEntry, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, bonus_deduction_id, employee_id, action, amount, logged_at
		FROM bonus_deduction_log
		WHERE employee_id = $1
		ORDER BY logged_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var entries []bonusdeduction.LogEntry
	for rows.Next() {
		var e bonusdeduction.LogEntry
		err := rows.Scan(&e.ID, &e.BonusDeductionID, &e.EmployeeID, &e.Action, &e.Amount, &e.LoggedAt)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return entries, nil
}
