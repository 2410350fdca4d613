package sender

import (
	"errors"
	"io"
	"log/slog"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/smtp"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

type MockSMTPClient struct {
	mock.Mock
}

func (m *MockSMTPClient) Mail(from string) error {
	return m.Called(from).Error(0)
}

func (m *MockSMTPClient) Rcpt(to string) error {
	return m.Called(to).Error(0)
}

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSMTPClient) Close() error {
	return m.Called().Error(0)
}

func (m *MockSMTPClient) Quit() error {
	return m.Called().Error(0)
}

type MockSMTPWriter struct {
	mock.Mock
}

func (m *MockSMTPWriter) Write(p []byte) (n int, err error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockSMTPWriter) Close() error {
	return m.Called().Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

const validBody = `{"member_id":"0b7c3d1e-8f4a-4b2c-9d5e-6f7a8b9c0d1e","name":"Ivan","email":"ivan@example.com","plan":"Monthly","expiry":"2025-06-05T00:00:00Z"}`

func TestService_SendExpiringNotice(t *testing.T) {
	tests := []struct {
		name          string
		body          []byte
		setupMocks    func(*MockTransport)
		expectedError bool
		errorMessage  string
		permanent     bool
	}{
		{
			name: "success",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				mockClient := new(MockSMTPClient)
				mockWriter := new(MockSMTPWriter)

				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(mockClient, nil).Once()
				mockClient.On("Mail", "gym@example.com").Return(nil).Once()
				mockClient.On("Rcpt", "ivan@example.com").Return(nil).Once()
				mockClient.On("Data").Return(mockWriter, nil).Once()
				mockWriter.On("Write", mock.MatchedBy(func(p []byte) bool {
					return strings.Contains(string(p), "05.06.2025") && strings.Contains(string(p), "Monthly")
				})).Return(100, nil).Once()
				mockWriter.On("Close").Return(nil).Once()
				mockClient.On("Quit").Return(nil).Once()
				mockClient.On("Close").Return(nil).Once()
			},
		},
		{
			name:          "invalid JSON",
			body:          []byte(`invalid json`),
			setupMocks:    func(_ *MockTransport) {},
			expectedError: true,
			errorMessage:  "error unmarshalling message",
			permanent:     true,
		},
		{
			name: "SMTP connection error",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(nil, errors.New("connection error")).Once()
			},
			expectedError: true,
			errorMessage:  "connection error",
		},
		{
			name: "RCPT error",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				mockClient := new(MockSMTPClient)
				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(mockClient, nil).Once()
				mockClient.On("Mail", "gym@example.com").Return(nil).Once()
				mockClient.On("Rcpt", "ivan@example.com").Return(errors.New("mailbox unavailable")).Once()
				mockClient.On("Close").Return(nil).Once()
			},
			expectedError: true,
			errorMessage:  "mailbox unavailable",
		},
		{
			name: "RCPT rejected with 550",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				mockClient := new(MockSMTPClient)
				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(mockClient, nil).Once()
				mockClient.On("Mail", "gym@example.com").Return(nil).Once()
				mockClient.On("Rcpt", "ivan@example.com").Return(&textproto.Error{Code: 550, Msg: "no such user"}).Once()
				mockClient.On("Close").Return(nil).Once()
			},
			expectedError: true,
			errorMessage:  "no such user",
			permanent:     true,
		},
		{
			name: "message rejected after DATA",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				mockClient := new(MockSMTPClient)
				mockWriter := new(MockSMTPWriter)
				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(mockClient, nil).Once()
				mockClient.On("Mail", "gym@example.com").Return(nil).Once()
				mockClient.On("Rcpt", "ivan@example.com").Return(nil).Once()
				mockClient.On("Data").Return(mockWriter, nil).Once()
				mockWriter.On("Write", mock.Anything).Return(100, nil).Once()
				mockWriter.On("Close").Return(&textproto.Error{Code: 554, Msg: "message refused"}).Once()
				mockClient.On("Close").Return(nil).Once()
			},
			expectedError: true,
			errorMessage:  "message refused",
			permanent:     true,
		},
		{
			name: "write error",
			body: []byte(validBody),
			setupMocks: func(t *MockTransport) {
				mockClient := new(MockSMTPClient)
				mockWriter := new(MockSMTPWriter)
				t.On("GetSMTPUser").Return("gym@example.com")
				t.On("Connect").Return(mockClient, nil).Once()
				mockClient.On("Mail", "gym@example.com").Return(nil).Once()
				mockClient.On("Rcpt", "ivan@example.com").Return(nil).Once()
				mockClient.On("Data").Return(mockWriter, nil).Once()
				mockWriter.On("Write", mock.Anything).Return(0, errors.New("broken pipe")).Once()
				mockClient.On("Close").Return(nil).Once()
			},
			expectedError: true,
			errorMessage:  "broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := new(MockTransport)
			tt.setupMocks(transport)

			svc := New(newNoopLogger(), transport)
			err := svc.SendExpiringNotice(tt.body)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMessage)
				assert.Equal(t, tt.permanent, errors.Is(err, rabbitmq.ErrPermanent))
			} else {
				assert.NoError(t, err)
			}
			transport.AssertExpectations(t)
		})
	}
}

func TestService_SendExpiredNotice(t *testing.T) {
	transport := new(MockTransport)
	mockClient := new(MockSMTPClient)
	mockWriter := new(MockSMTPWriter)

	transport.On("GetSMTPUser").Return("gym@example.com")
	transport.On("Connect").Return(mockClient, nil).Once()
	mockClient.On("Mail", "gym@example.com").Return(nil).Once()
	mockClient.On("Rcpt", "ivan@example.com").Return(nil).Once()
	mockClient.On("Data").Return(mockWriter, nil).Once()
	mockWriter.On("Write", mock.MatchedBy(func(p []byte) bool {
		return strings.Contains(string(p), "Subject: Ваш абонемент закончился")
	})).Return(100, nil).Once()
	mockWriter.On("Close").Return(nil).Once()
	mockClient.On("Quit").Return(nil).Once()
	mockClient.On("Close").Return(nil).Once()

	svc := New(newNoopLogger(), transport)
	require.NoError(t, svc.SendExpiredNotice([]byte(validBody)))

	transport.AssertExpectations(t)
	mockClient.AssertExpectations(t)
	mockWriter.AssertExpectations(t)
}

func TestService_MalformedMessageIsPermanent(t *testing.T) {
	svc := New(newNoopLogger(), nil)

	err := svc.SendExpiringNotice([]byte("not json"))
	require.ErrorIs(t, err, rabbitmq.ErrPermanent)

	err = svc.SendExpiredNotice([]byte(`{"email": 42}`))
	require.ErrorIs(t, err, rabbitmq.ErrPermanent)
}
