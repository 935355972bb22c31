package converter

import (
	"github.com/msto63/galleon/internal/measure/service"
)

// conversionMsg carries the result of a submitted line
type conversionMsg struct {
	conv *service.Conversion
	err  error
}
