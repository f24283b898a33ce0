package addons

import (
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/computebudget"
)

const microLamportsPerSOL = 1e15

// ComputeUnits 汇总交易的计算预算信息：
// 实际消耗来自交易元数据，限额与单价来自 ComputeBudget 指令。
type ComputeUnits struct {
	ComputeUnitsConsumed          *uint64  `json:"compute_units_consumed,omitempty"`
	ComputeUnitLimit              *uint32  `json:"compute_unit_limit,omitempty"`
	ComputeUnitPriceMicroLamports *uint64  `json:"compute_unit_price_micro_lamports,omitempty"`
	ComputeCostSOL                *float64 `json:"compute_cost_sol,omitempty"`
	RemainingComputeUnits         *int64   `json:"remaining_compute_units,omitempty"`
}

func enrichComputeUnits(tx *normalizer.Transaction, instrs []common.ParsedInstruction) *ComputeUnits {
	consumed := tx.Meta.ComputeUnitsConsumed

	var limit *uint32
	var price *uint64
	for _, in := range instrs {
		switch v := in.(type) {
		case computebudget.SetComputeUnitLimit:
			limit = &v.ComputeUnitLimit
		case computebudget.SetComputeUnitPrice:
			price = &v.MicroLamports
		}
	}

	if consumed == nil && limit == nil && price == nil {
		return nil
	}

	out := &ComputeUnits{
		ComputeUnitsConsumed:          consumed,
		ComputeUnitLimit:              limit,
		ComputeUnitPriceMicroLamports: price,
	}
	if consumed != nil && price != nil {
		cost := float64(*consumed) * float64(*price) / microLamportsPerSOL
		out.ComputeCostSOL = &cost
	}
	if consumed != nil && limit != nil {
		remaining := int64(*limit) - int64(*consumed)
		out.RemainingComputeUnits = &remaining
	}
	return out
}
