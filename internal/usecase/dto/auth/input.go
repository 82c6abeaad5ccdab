package authdto

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateSubscriptionInput struct {
	SubscriptionType string
}

type UpdatePaymentCardInput struct {
	CardNumber  string
	CardHolder  string
	ExpiryMonth int
	ExpiryYear  int
	Cvv         string
}
