package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMClient(client *domain.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:                     client.ID,
		Email:                  client.Email,
		Password:               client.Password,
		Name:                   client.Name,
		Phone:                  client.Phone,
		EmailVerified:          client.EmailVerified,
		PhoneVerified:          client.PhoneVerified,
		Role:                   string(client.Role),
		SubscriptionType:       string(client.SubscriptionType),
		SubscriptionActive:     client.SubscriptionActive,
		SubscriptionStartDate:  client.SubscriptionStartDate,
		SubscriptionEndDate:    client.SubscriptionEndDate,
		PaymentCardNumber:      client.PaymentCardNumber,
		PaymentCardHolder:      client.PaymentCardHolder,
		PaymentCardExpiryMonth: client.PaymentCardExpiryMonth,
		PaymentCardExpiryYear:  client.PaymentCardExpiryYear,
		PaymentCardCvv:         client.PaymentCardCvv,
		CreatedAt:              client.CreatedAt,
		UpdatedAt:              client.UpdatedAt,
	}
}

func ToDomainClient(model *models.ClientModel) *domain.Client {
	return &domain.Client{
		ID:                     model.ID,
		Email:                  model.Email,
		Password:               model.Password,
		Name:                   model.Name,
		Phone:                  model.Phone,
		EmailVerified:          model.EmailVerified,
		PhoneVerified:          model.PhoneVerified,
		Role:                   domain.ClientRole(model.Role),
		SubscriptionType:       domain.SubscriptionType(model.SubscriptionType),
		SubscriptionActive:     model.SubscriptionActive,
		SubscriptionStartDate:  model.SubscriptionStartDate,
		SubscriptionEndDate:    model.SubscriptionEndDate,
		PaymentCardNumber:      model.PaymentCardNumber,
		PaymentCardHolder:      model.PaymentCardHolder,
		PaymentCardExpiryMonth: model.PaymentCardExpiryMonth,
		PaymentCardExpiryYear:  model.PaymentCardExpiryYear,
		PaymentCardCvv:         model.PaymentCardCvv,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	}
}

func ToDomainClientList(list []models.ClientModel) []*domain.Client {
	clients := make([]*domain.Client, len(list))
	for i := range list {
		clients[i] = ToDomainClient(&list[i])
	}
	return clients
}
