package http

import (
	"fmt"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/MKhiriev/go-validation-gate/internal/config"
	"github.com/MKhiriev/go-validation-gate/internal/forms"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/utils"
	"github.com/MKhiriev/go-validation-gate/models"
)

// idGenerator issues identifiers for accepted requests.
type idGenerator interface {
	Generate() string
}

type Handler struct {
	signUp  *gate.Gate
	avatar  *gate.Gate
	contact *gate.Gate

	ids       idGenerator
	limits    config.Validation
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler builds one gate per validated route from factory.
func NewHandler(factory gate.ValidatorFactory, limits config.Validation, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	signUp, err := gate.New(factory, forms.SignUp{})
	if err != nil {
		return nil, fmt.Errorf("sign-up gate: %w", err)
	}
	avatar, err := gate.New(factory, forms.Avatar{})
	if err != nil {
		return nil, fmt.Errorf("avatar gate: %w", err)
	}
	contact, err := gate.New(factory, forms.Contact)
	if err != nil {
		return nil, fmt.Errorf("contact gate: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		signUp:    signUp,
		avatar:    avatar,
		contact:   contact,
		ids:       utils.NewUUIDGenerator(),
		limits:    limits,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}
