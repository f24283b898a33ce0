package normalizer

import (
	"strconv"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/types"
)

// normalizeAccountKey 统一 System Program 的异常写法：
// 部分来源会返回 33 个 '1' 的地址，规范化为标准的 32 个 '1'。
func normalizeAccountKey(key string) string {
	if key == consts.SystemProgramLegacyStr {
		return consts.SystemProgramStr
	}
	return key
}

// parseAccountKeys 将 base58 账户列表解析为 Pubkey 列表
func parseAccountKeys(keys []string) ([]types.Pubkey, error) {
	result := make([]types.Pubkey, 0, len(keys))
	for _, k := range keys {
		p, err := types.TryPubkeyFromBase58(normalizeAccountKey(k))
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// parseUint64 解析余额类字符串金额，非法输入按 0 处理
func parseUint64(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
