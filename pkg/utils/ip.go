package utils

import (
	"net"
)

// GetLocalIP 返回本机第一个非回环 IPv4 地址，取不到时返回 "unknown"。
// 仅用于拼接客户端标识，不参与业务逻辑。
func GetLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "unknown"
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ip4 := ipnet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "unknown"
}
