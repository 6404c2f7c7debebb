package product

import (
	"github.com/shopcloud/backend/domain"
	"go.uber.org/zap"
)

// SendEmailWhenCreatedHandler stands in for the catalogue notification mail.
type SendEmailWhenCreatedHandler struct {
	logger *zap.SugaredLogger
}

func NewSendEmailWhenCreatedHandler(logger *zap.SugaredLogger) *SendEmailWhenCreatedHandler {
	return &SendEmailWhenCreatedHandler{logger: logger}
}

func (h *SendEmailWhenCreatedHandler) Handle(event domain.BaseDomainEvent) error {
	createdEvent, ok := event.(CreatedEvent)
	if !ok {
		return nil
	}

	h.logger.Infow("sending email for new product",
		"product_id", createdEvent.Product.ID,
		"product_name", createdEvent.Product.Name,
	)

	return nil
}
