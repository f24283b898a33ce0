package addons

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tx-resolver-sol/internal/logic/normalizer"
)

// PlatformIdentifier 标记交易途经的已知交易平台（路由合约或手续费账户）。
type PlatformIdentifier struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// platformTable 为内置的平台识别表，可由 LoadPlatformTable 扩充。
var platformTable = map[string]string{
	"tro46jTMkb56A3wPepo5HT7JcvX9wFWvR8VaJzgdjEf":  "Trojan",
	"9RYJ3qr5eU5xAooqVcbmdeusjcViL5Nkiq7Gske3tiKq": "BullX",
	"AVUCZyuT35YSuj4RH7fwiyPu82Djn2Hfg7y2ND2XcnZH": "Photon",
}

// LoadPlatformTable 从 YAML 文件加载平台识别表并合并进内置表。
// 文件格式为 地址 → 平台名 的扁平映射；同名地址以文件为准。
// 应在服务启动阶段调用，解析开始后表是只读的。
func LoadPlatformTable(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read platform table: %w", err)
	}
	extra := make(map[string]string)
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("parse platform table: %w", err)
	}
	for addr, name := range extra {
		platformTable[addr] = name
	}
	return nil
}

func enrichPlatformIdentifier(tx *normalizer.Transaction) *PlatformIdentifier {
	for _, key := range tx.AllAccounts() {
		addr := key.String()
		if name, ok := platformTable[addr]; ok {
			return &PlatformIdentifier{Address: addr, Name: name}
		}
	}
	return nil
}
