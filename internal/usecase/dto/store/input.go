package storedto

type CreateStoreInput struct {
	Name           string
	Description    string
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	ContactCity    string
	Website        string
}

// UpdateStoreInput carries partial-update semantics: nil fields are left
// untouched.
type UpdateStoreInput struct {
	Name           *string
	Description    *string
	ContactEmail   *string
	ContactPhone   *string
	ContactAddress *string
	ContactCity    *string
	Website        *string
	IsActive       *bool
}

type CreateAppInput struct {
	Name            string
	Description     string
	Slug            string
	IconURL         string
	SplashScreenURL string
	PrimaryColor    string
	SecondaryColor  string
	TargetPlatforms []string
	DefaultLanguage string
	Currency        string
	Keywords        []string
	Screenshots     []string
	StoreID         string
}
