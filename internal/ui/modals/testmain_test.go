package modals

import (
	"os"
	"testing"

	"github.com/zhubert/ragchat/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the default debug log
	logger.Reset()
	logger.Init(os.DevNull)

	ModalWidth = 60
	ModalInputWidth = 50
	ModalInputCharLimit = 256

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
