package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coursedesk/coursedesk-backend/models"
)

type SessionTokenEncoder struct {
	mock.Mock
}

func (m *SessionTokenEncoder) EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}
