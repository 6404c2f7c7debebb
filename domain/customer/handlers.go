package customer

import (
	"github.com/shopcloud/backend/domain"
	"go.uber.org/zap"
)

// FirstCreatedLogHandler and SecondCreatedLogHandler are the default
// CustomerCreated handlers.
type FirstCreatedLogHandler struct {
	logger *zap.SugaredLogger
}

func NewFirstCreatedLogHandler(logger *zap.SugaredLogger) *FirstCreatedLogHandler {
	return &FirstCreatedLogHandler{logger: logger}
}

func (h *FirstCreatedLogHandler) Handle(event domain.BaseDomainEvent) error {
	h.logger.Info("first handler of event: CustomerCreated")

	return nil
}

type SecondCreatedLogHandler struct {
	logger *zap.SugaredLogger
}

func NewSecondCreatedLogHandler(logger *zap.SugaredLogger) *SecondCreatedLogHandler {
	return &SecondCreatedLogHandler{logger: logger}
}

func (h *SecondCreatedLogHandler) Handle(event domain.BaseDomainEvent) error {
	h.logger.Info("second handler of event: CustomerCreated")

	return nil
}

type AddressChangedLogHandler struct {
	logger *zap.SugaredLogger
}

func NewAddressChangedLogHandler(logger *zap.SugaredLogger) *AddressChangedLogHandler {
	return &AddressChangedLogHandler{logger: logger}
}

func (h *AddressChangedLogHandler) Handle(event domain.BaseDomainEvent) error {
	addressChangedEvent, ok := event.(AddressChangedEvent)
	if !ok {
		return nil
	}

	h.logger.Infof("customer address: %s %s changed to: %s",
		addressChangedEvent.ID, addressChangedEvent.Name, addressChangedEvent.Address)

	return nil
}
