package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/e-library/library/internal/model"
)

func TestFeeReceipt_MarshalJSON(t *testing.T) {
	r := model.FeeReceipt{
		ID:               "r1",
		UserFinancialsID: "f1",
		Balance:          "fee",
		TotalDebt:        decimal.NewFromInt(40),
		AmountPaid:       decimal.RequireFromString("15.25"),
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"id":"r1","userFinancials":"f1","balance":"fee","totalDebt":40,"amountPaid":15.25,"remainingBalance":24.75}`,
		string(b))
}
