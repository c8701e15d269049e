package testtool

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

// IntegrationEnv 設定後才執行需要 docker 的整合測試
const IntegrationEnv = "GAMERFLOW_INTEGRATION"

// RequireIntegration skip test when IntegrationEnv is not set
func RequireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv(IntegrationEnv) == "" {
		t.Skipf("set %s=1 to run integration tests", IntegrationEnv)
	}
}

// SetupContainer 通用函式來啟動測試容器, 回傳第一個 ExposedPorts 的 host:port
func SetupContainer(ctx context.Context, req testcontainers.ContainerRequest) (testcontainers.Container, string, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", "", err
	}

	natPort, err := nat.NewPort("tcp", strings.TrimSuffix(req.ExposedPorts[0], "/tcp"))
	if err != nil {
		return nil, "", "", err
	}

	port, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return nil, "", "", err
	}

	return container, host, port.Port(), nil
}
