// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/tenant-auth/models"
)

const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldGrantType    = "grant_type"
	FieldClientID     = "client_id"
	FieldClientSecret = "client_secret"
	FieldName         = "name"
	FieldExpiresAt    = "expires_at"
	FieldTenantID     = "tenant_id"
	FieldUserID       = "user_id"
)

// MaxClientNameLength matches the width of api_clients.name.
const MaxClientNameLength = 255

// AuthValidator validates the inputs of the grant and client management
// operations.
type AuthValidator struct {
	now func() time.Time
}

func NewAuthValidator() Validator {
	return &AuthValidator{now: time.Now}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.TokenRequest:
		return v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value, fields...)

	case models.CreateClientRequest:
		return v.validateCreateClientRequest(value, fields...)
	case *models.CreateClientRequest:
		return v.validateCreateClientRequest(*value, fields...)

	case models.Principal:
		return v.validatePrincipal(value, fields...)
	case *models.Principal:
		return v.validatePrincipal(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateTokenRequest(request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGrantType, FieldClientID, FieldClientSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldGrantType:
			if request.GrantType != models.GrantTypeClientCredentials {
				return ErrUnsupportedGrantType
			}
		case FieldClientID:
			if request.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldClientSecret:
			if request.ClientSecret == "" {
				return ErrEmptyClientSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateCreateClientRequest(request models.CreateClientRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(request.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxClientNameLength {
				return ErrNameTooLong
			}
		case FieldExpiresAt:
			if request.ExpiresAt != nil && request.ExpiresAt.Before(v.now()) {
				return ErrExpiryInPast
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validatePrincipal(principal models.Principal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTenantID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldTenantID:
			if principal.TenantID == nil {
				return ErrMissingTenant
			}
		case FieldUserID:
			if principal.UserID == nil {
				return ErrMissingUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
