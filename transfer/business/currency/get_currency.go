package currency

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/transfer/model"
)

func (b *business) GetCurrency(ctx context.Context, code string) (*model.CurrencyInfo, error) {
	dbCurrency, err := b.currencyRepo.GetCurrency(ctx, pgtype.Text{String: code, Valid: true})
	if err != nil {
		return nil, &errs.Error{Code: errs.NotFound, Message: "currency not supported"}
	}

	currency := &model.CurrencyInfo{
		ID:      dbCurrency.ID,
		Code:    dbCurrency.Code.String,
		Rate:    parseNumeric(dbCurrency.Rate),
		Enabled: dbCurrency.Enabled,
	}

	if dbCurrency.Symbol.Valid {
		currency.Symbol = &dbCurrency.Symbol.String
	}

	return currency, nil
}

// parseNumeric converts a pgtype.Numeric exchange rate to float64;
// invalid or unparseable values become 0 so disabled rows never
// silently convert.
func parseNumeric(numeric pgtype.Numeric) float64 {
	if !numeric.Valid {
		return 0
	}
	f, err := numeric.Float64Value()
	if err != nil || !f.Valid {
		return 0
	}
	return f.Float64
}
