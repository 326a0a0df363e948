package testutil

import (
	"bytes"
	"context"

	"github.com/stretchr/testify/suite"
	"github.com/vibesbot/webhook-invoker/internal/config"
	"github.com/vibesbot/webhook-invoker/internal/logger"
	"github.com/vibesbot/webhook-invoker/internal/sentry"
	"github.com/vibesbot/webhook-invoker/internal/validator"
)

// TestEndpoint is the endpoint configured for suites using the mock client
const TestEndpoint = "http://webhook.test/ggtec/api/webhook"

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	config     *config.Configuration
	logger     *logger.Logger
	sentry     *sentry.Service
	httpClient *MockHTTPClient
	output     *bytes.Buffer
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.config = config.GetDefaultConfig(TestEndpoint)
	s.sentry = sentry.NewSentryService(s.config, s.logger)
	s.httpClient = NewMockHTTPClient()
	s.output = &bytes.Buffer{}
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.httpClient.Clear()
	s.output.Reset()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetSentry returns a disabled sentry service
func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

// GetHTTPClient returns the mock HTTP client
func (s *BaseServiceTestSuite) GetHTTPClient() *MockHTTPClient {
	return s.httpClient
}

// GetOutput returns the buffer standing in for stdout
func (s *BaseServiceTestSuite) GetOutput() *bytes.Buffer {
	return s.output
}
