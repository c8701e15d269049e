package token

import "gamerflow_service/pkg/config"

// 測試時可覆蓋
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper 以服務名稱作為 issuer 簽發 profile token
func GenerateJWTWrapper(profileID, role string) (string, error) {
	return GenerateJWTFunc(profileID, role, config.EnvConfig.Service)
}

// ParseJWTWrapper parse token through ParseJWTFunc
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
