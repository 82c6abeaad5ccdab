package mappers

import (
	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
)

func ToGORMApp(app *domain.App) *models.AppModel {
	return &models.AppModel{
		ID:              app.ID,
		Name:            app.Name,
		Description:     app.Description,
		Slug:            app.Slug,
		Version:         app.Version,
		IconURL:         app.IconURL,
		SplashScreenURL: app.SplashScreenURL,
		PrimaryColor:    app.PrimaryColor,
		SecondaryColor:  app.SecondaryColor,
		TargetPlatforms: encodeStringList(app.TargetPlatforms),
		DefaultLanguage: app.DefaultLanguage,
		Currency:        app.Currency,
		Keywords:        encodeStringList(app.Keywords),
		Screenshots:     encodeStringList(app.Screenshots),
		StoreID:         app.StoreID,
		AppURL:          app.AppURL,
		CreatedAt:       app.CreatedAt,
		UpdatedAt:       app.UpdatedAt,
	}
}

func ToDomainApp(model *models.AppModel) *domain.App {
	return &domain.App{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		Slug:            model.Slug,
		Version:         model.Version,
		IconURL:         model.IconURL,
		SplashScreenURL: model.SplashScreenURL,
		PrimaryColor:    model.PrimaryColor,
		SecondaryColor:  model.SecondaryColor,
		TargetPlatforms: decodeStringList(model.TargetPlatforms),
		DefaultLanguage: model.DefaultLanguage,
		Currency:        model.Currency,
		Keywords:        decodeStringList(model.Keywords),
		Screenshots:     decodeStringList(model.Screenshots),
		StoreID:         model.StoreID,
		AppURL:          model.AppURL,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
