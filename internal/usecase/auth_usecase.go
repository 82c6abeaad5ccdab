package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoply-app/shoply-backend/internal/domain"
	authdto "github.com/shoply-app/shoply-backend/internal/usecase/dto/auth"
)

const subscriptionPeriod = 30 * 24 * time.Hour

// TokenManager issues signed access tokens for authenticated clients.
type TokenManager interface {
	Generate(clientID string) (string, error)
}

type AuthUsecase interface {
	Register(input *authdto.RegisterInput) (*authdto.AuthPayload, error)
	Login(input *authdto.LoginInput) (*authdto.AuthPayload, error)
	GetProfile(clientID string) (*domain.Client, error)
	UpdateSubscription(actor *domain.Client, input *authdto.UpdateSubscriptionInput) (*domain.Client, error)
	UpdatePaymentCard(actor *domain.Client, input *authdto.UpdatePaymentCardInput) (*domain.Client, error)
	RemovePaymentCard(actor *domain.Client) (*domain.Client, error)
}

type DefaultAuthUsecase struct {
	clientRepo domain.ClientRepository
	tokens     TokenManager
}

func NewDefaultAuthUsecase(clientRepo domain.ClientRepository, tokens TokenManager) *DefaultAuthUsecase {
	return &DefaultAuthUsecase{
		clientRepo: clientRepo,
		tokens:     tokens,
	}
}

func (uc *DefaultAuthUsecase) Register(input *authdto.RegisterInput) (*authdto.AuthPayload, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	_, err := uc.clientRepo.GetClientByEmail(input.Email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	client := &domain.Client{
		ID:               uuid.New().String(),
		Email:            input.Email,
		Password:         string(hash),
		Name:             input.Name,
		Role:             domain.RoleUser,
		SubscriptionType: domain.SubscriptionBasic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.clientRepo.CreateClient(client); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(client.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &authdto.AuthPayload{Token: token, Client: client}, nil
}

func (uc *DefaultAuthUsecase) Login(input *authdto.LoginInput) (*authdto.AuthPayload, error) {
	client, err := uc.clientRepo.GetClientByEmail(input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(client.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &authdto.AuthPayload{Token: token, Client: client}, nil
}

func (uc *DefaultAuthUsecase) GetProfile(clientID string) (*domain.Client, error) {
	return uc.clientRepo.GetClientByID(clientID)
}

func (uc *DefaultAuthUsecase) UpdateSubscription(actor *domain.Client, input *authdto.UpdateSubscriptionInput) (*domain.Client, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	subType := domain.SubscriptionType(input.SubscriptionType)
	switch subType {
	case domain.SubscriptionBasic, domain.SubscriptionAdvanced, domain.SubscriptionPro, domain.SubscriptionUnlimited:
	default:
		return nil, fmt.Errorf("%w: unknown subscription type %q", domain.ErrInvalidInput, input.SubscriptionType)
	}

	now := time.Now()
	end := now.Add(subscriptionPeriod)

	actor.SubscriptionType = subType
	actor.SubscriptionActive = true
	actor.SubscriptionStartDate = &now
	actor.SubscriptionEndDate = &end
	actor.UpdatedAt = now

	if err := uc.clientRepo.UpdateClient(actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (uc *DefaultAuthUsecase) UpdatePaymentCard(actor *domain.Client, input *authdto.UpdatePaymentCardInput) (*domain.Client, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	actor.PaymentCardNumber = input.CardNumber
	actor.PaymentCardHolder = input.CardHolder
	actor.PaymentCardExpiryMonth = input.ExpiryMonth
	actor.PaymentCardExpiryYear = input.ExpiryYear
	actor.PaymentCardCvv = input.Cvv
	actor.UpdatedAt = time.Now()

	if err := uc.clientRepo.UpdateClient(actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (uc *DefaultAuthUsecase) RemovePaymentCard(actor *domain.Client) (*domain.Client, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	actor.PaymentCardNumber = ""
	actor.PaymentCardHolder = ""
	actor.PaymentCardExpiryMonth = 0
	actor.PaymentCardExpiryYear = 0
	actor.PaymentCardCvv = ""
	actor.UpdatedAt = time.Now()

	if err := uc.clientRepo.UpdateClient(actor); err != nil {
		return nil, err
	}
	return actor, nil
}
