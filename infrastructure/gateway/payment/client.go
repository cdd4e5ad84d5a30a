// Package payment é o gateway tipado do serviço de pagamentos: CRUD de meios
// de pagamento.
package payment

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

type Client interface {
	ListMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	AddMethod(ctx context.Context, req domain.SavePaymentMethodRequest) (*domain.PaymentMethod, error)
	UpdateMethod(ctx context.Context, methodID string, req domain.SavePaymentMethodRequest) (*domain.PaymentMethod, error)
	DeleteMethod(ctx context.Context, methodID string) error
	SetDefaultMethod(ctx context.Context, methodID string) error
}

type PaymentClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &PaymentClient{api: api}
}

func (c *PaymentClient) ListMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	resp := c.api.Get(ctx, "/api/v1/payments/methods", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var methods []domain.PaymentMethod
	if err := envelope.DecodeList(resp.Data, "methods", &methods); err != nil {
		logrus.WithError(err).Error("payment: erro ao decodificar meios de pagamento")
		return nil, errors.Wrap(err, "resposta inesperada ao listar meios de pagamento")
	}

	return methods, nil
}

func (c *PaymentClient) AddMethod(ctx context.Context, req domain.SavePaymentMethodRequest) (*domain.PaymentMethod, error) {
	resp := c.api.Post(ctx, "/api/v1/payments/methods", req)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	method := &domain.PaymentMethod{}
	if err := envelope.DecodeObject(resp.Data, method); err != nil {
		logrus.WithError(err).Error("payment: erro ao decodificar meio de pagamento criado")
		return nil, errors.Wrap(err, "resposta inesperada ao cadastrar meio de pagamento")
	}

	return method, nil
}

func (c *PaymentClient) UpdateMethod(ctx context.Context, methodID string, req domain.SavePaymentMethodRequest) (*domain.PaymentMethod, error) {
	resp := c.api.Put(ctx, fmt.Sprintf("/api/v1/payments/methods/%s", methodID), req)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	method := &domain.PaymentMethod{}
	if err := envelope.DecodeObject(resp.Data, method); err != nil {
		logrus.WithError(err).WithField("method_id", methodID).Error("payment: erro ao decodificar meio de pagamento atualizado")
		return nil, errors.Wrap(err, "resposta inesperada ao atualizar meio de pagamento")
	}

	return method, nil
}

func (c *PaymentClient) DeleteMethod(ctx context.Context, methodID string) error {
	resp := c.api.Delete(ctx, fmt.Sprintf("/api/v1/payments/methods/%s", methodID))
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}

func (c *PaymentClient) SetDefaultMethod(ctx context.Context, methodID string) error {
	resp := c.api.Post(ctx, fmt.Sprintf("/api/v1/payments/methods/%s/default", methodID), nil)
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}
