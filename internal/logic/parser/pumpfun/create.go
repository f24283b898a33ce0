package pumpfun

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Create 表示在 bonding curve 上发行新代币。
// 辅助地址按固定账户位读取；账户表短于预期时对应字段留空，不视为错误。
type Create struct {
	common.InstructionBase
	Who                    string `json:"who,omitempty"`
	Mint                   string `json:"mint,omitempty"`
	MintAuthority          string `json:"mint_authority,omitempty"`
	BondingCurve           string `json:"bonding_curve,omitempty"`
	AssociatedBondingCurve string `json:"associated_bonding_curve,omitempty"`
	MplTokenMetadata       string `json:"mpl_token_metadata,omitempty"`
	Metadata               string `json:"metadata,omitempty"`
	Name                   string `json:"name"`
	Symbol                 string `json:"symbol"`
	URI                    string `json:"uri"`
}

func decodeCreate(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(8, "discriminator")
	name := r.String("name")
	symbol := r.String("symbol")
	uri := r.String("uri")
	if err := r.Err(); err != nil {
		return nil, err
	}

	out := Create{
		InstructionBase: base("Create"),
		Name:            name,
		Symbol:          symbol,
		URI:             uri,
	}

	// 固定账户位：0=mint 1=mint_authority 2=bonding_curve 3=associated_bonding_curve
	// 5=mpl_token_metadata 6=metadata 7=创建者（4 为 global 配置账户，不输出）
	fields := []struct {
		pos int
		dst *string
	}{
		{0, &out.Mint},
		{1, &out.MintAuthority},
		{2, &out.BondingCurve},
		{3, &out.AssociatedBondingCurve},
		{5, &out.MplTokenMetadata},
		{6, &out.Metadata},
		{7, &out.Who},
	}
	for _, f := range fields {
		addr, err := ctx.OptionalAccountAt(ix, f.pos)
		if err != nil {
			return nil, err
		}
		*f.dst = addr
	}
	return out, nil
}
