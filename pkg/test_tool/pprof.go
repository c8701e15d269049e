package testtool

import (
	"net/http"
	_ "net/http/pprof" // 匯入後會自動註冊 pprof endpoint

	"gamerflow_service/pkg/config"
	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
)

// DefaultPprofAddr 只監聽本機
const DefaultPprofAddr = "127.0.0.1:6060"

// StartPprof production 以外的環境啟動 pprof 監控伺服器, 回傳是否啟動
//
//	curl http://127.0.0.1:6060/debug/pprof/
//	go tool pprof http://127.0.0.1:6060/debug/pprof/heap
func StartPprof(addr string) bool {
	if config.IsProduction() {
		logger.Log.Info("Production environment detected, pprof is disabled.")
		return false
	}
	if addr == "" {
		addr = DefaultPprofAddr
	}

	go func() {
		logger.Log.Info("Starting pprof server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Log.Warn("pprof server stopped", zap.Error(err))
		}
	}()
	return true
}
