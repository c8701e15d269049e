package errprocess

import (
	"errors"
	"fmt"

	"gamerflow_service/pkg/logger"
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// Wrap log errMsg with the cause and keep the cause for errors.Is
func Wrap(errMsg string, err error) error {
	logger.Log.Errorf(errMsg, err)
	return fmt.Errorf("%s: %w", errMsg, err)
}
