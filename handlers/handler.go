package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/ujjwalnp/ZenithTREKS/storage"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler carries the injected collaborators every request handler needs:
// the database handle, the trip-image store and the gallery store.
type Handler struct {
	DB      *gorm.DB
	Media   storage.Store
	Gallery storage.Store
}

func New(db *gorm.DB, media, gallery storage.Store) *Handler {
	return &Handler{DB: db, Media: media, Gallery: gallery}
}
