package service

import (
	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/store"
	"github.com/MKhiriev/go-cookbook/internal/utils"
)

type ClientServices struct {
	RecipeService  ClientRecipeService
	SessionService ClientSessionService
}

func NewClientServices(storages *store.ClientStorages, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) *ClientServices {
	recipeSvc := NewClientRecipeService(storages.Recipes, ids, clock, logger)

	return &ClientServices{
		RecipeService:  recipeSvc,
		SessionService: NewClientSessionService(storages.Sessions, recipeSvc, logger),
	}
}
