package domain

import (
	"fmt"
	"strings"
)

// Source identifies where a log record came from. Application and
// environment are required, server and component are optional.
type Source struct {
	Application string
	Environment string
	Server      string
	Component   string
}

func NewSource(application, environment, server, component string) (Source, error) {
	if strings.TrimSpace(application) == "" {
		return Source{}, ErrEmptyApplication
	}

	if strings.TrimSpace(environment) == "" {
		return Source{}, ErrEmptyEnvironment
	}

	return Source{
		Application: strings.TrimSpace(application),
		Environment: strings.TrimSpace(environment),
		Server:      strings.TrimSpace(server),
		Component:   strings.TrimSpace(component),
	}, nil
}

// Identifier renders the source as application:environment:server:component
// with placeholders for missing optional fields.
func (s Source) Identifier() string {
	server := s.Server
	if server == "" {
		server = "unknown"
	}

	component := s.Component
	if component == "" {
		component = "default"
	}

	return fmt.Sprintf("%s:%s:%s:%s", s.Application, s.Environment, server, component)
}

func (s Source) Matches(application, environment, server string) bool {
	if !strings.EqualFold(s.Application, application) {
		return false
	}

	if environment != "" && !strings.EqualFold(s.Environment, environment) {
		return false
	}

	if server != "" && !strings.EqualFold(s.Server, server) {
		return false
	}

	return true
}
